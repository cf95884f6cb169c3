package engine

import (
	"fmt"
	"strings"
)

// arithmeticOps maps operation keywords to Python operators. The
// trigger's alternation is the same closed vocabulary, so lookups
// cannot miss.
var arithmeticOps = map[string]string{
	"add":      "+",
	"subtract": "-",
	"multiply": "*",
	"divide":   "/",
}

// defaultRules builds the rule table. Order is load-bearing: narrow
// literal triggers ("print list", "print string", "print dictionary")
// must come before the free-text "print (.+)" trigger, which is
// declared last so it can never shadow them. TestPrintPrecedence
// guards against reordering.
//
// The help rule renders its text from the engine's own table, so the
// catalog cannot drift from the rules that actually exist.
func defaultRules(e *Engine) []Rule {
	return []Rule{
		newRule("print-range",
			"print numbers from X to Y",
			"print each integer from X through Y",
			"print numbers from 1 to 5",
			`print numbers from (\d+) to (\d+)`,
			func(c []string) (string, error) {
				start, err := atoi(c[1])
				if err != nil {
					return "", err
				}
				end, err := atoi(c[2])
				if err != nil {
					return "", err
				}
				// range() excludes its upper bound; the instruction's Y
				// is inclusive.
				return fmt.Sprintf("for i in range(%d, %d):\n    print(i)", start, end+1), nil
			}),

		newRule("arithmetic",
			"add/subtract/multiply/divide X and Y",
			"print the result of a basic math operation",
			"add 10 and 20",
			`(add|subtract|multiply|divide) (\d+) and (\d+)`,
			func(c []string) (string, error) {
				return fmt.Sprintf("print(%s %s %s)", c[2], arithmeticOps[c[1]], c[3]), nil
			}),

		newRule("create-list",
			"create list X,Y,Z",
			"create my_list from comma-separated values",
			"create list 1,2,3",
			`create list (.+)`,
			func(c []string) (string, error) {
				return "my_list = " + pyList(c[1]), nil
			}),

		newRule("append-list",
			"append X to list",
			"append a value to my_list",
			"append 6 to list",
			`append (.+) to list`,
			func(c []string) (string, error) {
				return "my_list.append(" + pyLiteral(strings.TrimSpace(c[1])) + ")", nil
			}),

		newRule("sort-list",
			"sort list",
			"sort my_list in place",
			"sort list",
			`sort list`,
			func([]string) (string, error) {
				return "my_list.sort()", nil
			}),

		newRule("print-list",
			"print list",
			"print my_list",
			"print list",
			`print list`,
			func([]string) (string, error) {
				return "print(my_list)", nil
			}),

		newRule("square",
			"square X",
			"print the square of a number",
			"square 5",
			`square (\d+)`,
			func(c []string) (string, error) {
				return fmt.Sprintf("print(%s ** 2)", c[1]), nil
			}),

		newRule("create-string",
			"create string X",
			"create my_string from text",
			"create string hello python",
			`create string (.+)`,
			func(c []string) (string, error) {
				return "my_string = " + pyString(c[1]), nil
			}),

		newRule("uppercase-string",
			"uppercase string",
			"convert my_string to uppercase",
			"uppercase string",
			`uppercase string`,
			func([]string) (string, error) {
				return "my_string = my_string.upper()", nil
			}),

		newRule("print-string",
			"print string",
			"print my_string",
			"print string",
			`print string`,
			func([]string) (string, error) {
				return "print(my_string)", nil
			}),

		newRule("create-dict",
			"create dictionary key:value, key:value",
			"create my_dict from key:value pairs",
			"create dictionary name:john, age:25",
			`create dictionary (.+)`,
			func(c []string) (string, error) {
				body, err := pyDict(c[1])
				if err != nil {
					return "", err
				}
				return "my_dict = " + body, nil
			}),

		newRule("print-dict",
			"print dictionary",
			"print my_dict",
			"print dictionary",
			`print dictionary`,
			func([]string) (string, error) {
				return "print(my_dict)", nil
			}),

		newRule("conditional",
			"if X equals Y then print Z",
			"print a message when a variable equals a number",
			"if x equals 10 then print correct",
			`if (\w+) equals (\d+) then print (.+)`,
			func(c []string) (string, error) {
				return fmt.Sprintf("if %s == %s: print(%s)", c[1], c[2], pyString(c[3])), nil
			}),

		newRule("loop-list",
			"loop list",
			"print each item of my_list",
			"loop list",
			`loop list`,
			func([]string) (string, error) {
				return "for item in my_list:\n    print(item)", nil
			}),

		newRule("ask-input",
			"ask input MESSAGE",
			"read user input with a prompt",
			"ask input Enter your name:",
			`ask input (.+)`,
			func(c []string) (string, error) {
				return "user_input = input(" + pyString(c[1]) + ")", nil
			}),

		newRule("help",
			"help",
			"show this command list",
			"help",
			`help|show commands`,
			func([]string) (string, error) {
				return e.helpText(), nil
			}),

		// Broadest trigger last: anything else starting with "print"
		// becomes a quoted-string print.
		newRule("print-text",
			"print TEXT",
			"print any text",
			"print hello world",
			`print (.+)`,
			func(c []string) (string, error) {
				return "print(" + pyString(c[1]) + ")", nil
			}),
	}
}

// helpText renders the command catalog as a Python comment block,
// one line per rule in table order.
func (e *Engine) helpText() string {
	var b strings.Builder
	b.WriteString("# Available commands:")
	for _, doc := range e.Catalog() {
		b.WriteString("\n# ")
		b.WriteString(doc.Usage)
		b.WriteString(" - ")
		b.WriteString(doc.Summary)
	}
	return b.String()
}
