package countdown

import "strings"

const skyline = `         .        .            |       .        .        .
              *        .       |   .        .
        .                     /-\     .           .   .
 .               .    .      |"""|              :        .
         .                  /"""""\  .      *       |>.
                           | # # # |     .        /\|  ___
    __     ___   ___   .   |# # # #| ___      ___/<>\ |:::|
  / ""|  __|~~| |"""|      |# # # #||"""|  __|"""|^^| |:::|
 /""""| |::|''|~~~~||_____ |# # # #||"""|-|::|"""|''|_|   |
 |""""| |::|''|""""|:::::| |# # # #||"""|t|::|"""|''|"""""|
 |""""|_|  |''|""""|:::::| |# # # #||"""|||::|"""|''""""""|
 |""""|::::|''|""""|:::::| |# # # #||"""|||::|"""|''""""""|
`

// Skyline returns the art block, followed by the blank rows that separate it
// from the quote.
func Skyline() []string {
	lines := strings.Split(skyline, "\n")
	return append(lines, "")
}

// Quotes is the fixed rotation list.
var Quotes = []string{
	"Keep going — small steps add up.",
	"Stay focused. Time is your ally.",
	"You're building momentum.",
	"Progress > perfection.",
	"Discipline beats motivation.",
}
