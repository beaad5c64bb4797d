// Copyright (C) 2021  Antonio Lassandro

// This program is free software: you can redistribute it and/or modify it
// under the terms of the GNU General Public License as published by the Free
// Software Foundation, either version 3 of the License, or (at your option)
// any later version.

// This program is distributed in the hope that it will be useful, but WITHOUT
// ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or
// FITNESS FOR A PARTICULAR PURPOSE.  See the GNU General Public License for
// more details.

// You should have received a copy of the GNU General Public License along
// with this program.  If not, see <http://www.gnu.org/licenses/>.

package report

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"github.com/lassandro/qasm/pkg/assembler"
	"github.com/lassandro/qasm/pkg/encoding"
	"github.com/lassandro/qasm/pkg/source"
)

var (
	SuccessColorFG = pterm.FgLightGreen
	WarnColorFG    = pterm.FgYellow
	WarnStyleBG    = pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	ErrorColorFG   = pterm.FgRed
	ErrorStyleBG   = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	InfoColorFG    = SuccessColorFG
	InfoStyleBG    = pterm.NewStyle(pterm.BgLightGreen, pterm.FgBlack)
)

const tabWidth = 4

func displayMessage(w io.Writer, style *pterm.Style, color pterm.Color, tag, msg string) {
	fmt.Fprintln(w, style.Sprint(tag)+color.Sprint(" "+msg))
}

// -- Syntax Error ---------------------- prog.as
// 01:05: Invalid register identifier
//
//  3 |  MOV M[r1][r9], r2
//    |             ^~
func displayDiagnostic(w io.Writer, path string, raw []source.Line, expansions map[int]bool, err error, isError bool) {
	var title string
	var color pterm.Color

	if isError {
		title = source.KindOf(err).String() + " Error"
		color = ErrorColorFG
		fmt.Fprint(w, "\n-- ", ErrorStyleBG.Sprint(title), " ")
	} else {
		title = "Warning"
		color = WarnColorFG
		fmt.Fprint(w, "\n-- ", WarnStyleBG.Sprint(title), " ")
	}

	fileName := filepath.Base(path)
	bannerLen := pterm.GetTerminalWidth() / 2

	if bannerLen > 50 {
		bannerLen = 50
	}

	dashCount := bannerLen - len(fileName) - len(title) - 1

	if dashCount < 2 {
		dashCount = 2
	}

	fmt.Fprintln(w, strings.Repeat("-", dashCount), InfoColorFG.Sprint(fileName))
	fmt.Fprintln(w, err.Error())

	tokenErr, ok := err.(source.TokenError)

	if !ok {
		return
	}

	position := tokenErr.GetPosition()

	if position.Line < 1 || position.Line > len(raw) {
		return
	}

	line := raw[position.Line-1].Text
	column := position.Column - 1

	if column < 0 || column > len(line) {
		column = len(line)
	}

	// Tabs are expanded so the underline stays aligned with the text
	offset := len(strings.ReplaceAll(line[:column], "\t", strings.Repeat(" ", tabWidth)))
	size := position.Size

	if size < 1 {
		size = 1
	}

	number := strconv.Itoa(position.Line)

	fmt.Fprintln(w)
	fmt.Fprintln(
		w,
		InfoColorFG.Sprint(" "+number),
		"| ",
		strings.ReplaceAll(line, "\t", strings.Repeat(" ", tabWidth)),
	)

	// Columns index the expanded body text, not the call
	if expansions[position.Line] {
		fmt.Fprintln(
			w,
			strings.Repeat(" ", len(number)+1),
			"| ",
			color.Sprint("(in macro expansion)"),
		)

		return
	}

	fmt.Fprintln(
		w,
		strings.Repeat(" ", len(number)+1),
		"| ",
		strings.Repeat(" ", offset)+color.Sprint("^"+strings.Repeat("~", size-1)),
	)
}

// expandedLines marks the source lines whose text was replaced by a macro
// body during preprocessing.
func expandedLines(raw, expanded []source.Line) map[int]bool {
	var marked = make(map[int]bool)

	for _, line := range expanded {
		if line.Number < 1 || line.Number > len(raw) {
			continue
		}

		if raw[line.Number-1].Text != line.Text {
			marked[line.Number] = true
		}
	}

	return marked
}

func displayFinished(w io.Writer, success bool, errorCount, warningCount int) {
	fmt.Fprintln(w)

	if success {
		fmt.Fprint(w, SuccessColorFG.Sprint("All done! "))
	} else {
		fmt.Fprint(w, ErrorColorFG.Sprint("Oh no! "))
	}

	fmt.Fprint(w, "(")

	switch errorCount {
	case 0:
		fmt.Fprint(w, SuccessColorFG.Sprint(0), " errors, ")
	case 1:
		fmt.Fprint(w, ErrorColorFG.Sprint(1), " error, ")
	default:
		fmt.Fprint(w, ErrorColorFG.Sprint(errorCount), " errors, ")
	}

	switch warningCount {
	case 0:
		fmt.Fprintln(w, SuccessColorFG.Sprint(0), "warnings)")
	case 1:
		fmt.Fprintln(w, WarnColorFG.Sprint(1), "warning)")
	default:
		fmt.Fprintln(w, WarnColorFG.Sprint(warningCount), "warnings)")
	}
}

func renderSymbols(symbols []assembler.Symbol) (string, error) {
	data := pterm.TableData{{"Name", "Address", "Kind", "Entry"}}

	for _, symbol := range symbols {
		kind := "code"

		if symbol.IsExternal {
			kind = "external"
		} else if symbol.IsData {
			kind = "data"
		}

		entry := ""

		if symbol.IsEntry {
			entry = "yes"
		}

		data = append(data, []string{
			symbol.Name,
			encoding.EncodeBase4(symbol.Address),
			kind,
			entry,
		})
	}

	return pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
}
