// Package match builds rename templates from documents written in the same
// grammar as the input.
//
// A template is an ordinary dotenv or JSON document whose leaves are bare or
// braced $NAME references:
//
//	{"foo": $BAR, "boo": [$BAH, {"lol": $LURG}]}
//	foo=$BAR;boo=$BAH
//
// Each leaf path of the template selects the input leaf at the same path and
// renames it to NAME. Input leaves absent from the template are dropped.
package match
