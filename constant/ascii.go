package constant

import _ "embed"

// Logo is printed at the top of the root command help.
//
//go:embed ascii.txt
var Logo string
