// Package generate emits the calendar tables compiled into the cftime
// package.
package generate

import (
	. "github.com/dave/jennifer/jen"
	"github.com/iancoleman/strcase"
)

type calendarDef struct {
	// Name is the canonical CF calendar name.
	Name string
	// Ident overrides the identifier derived from Name when set.
	Ident string
}

// calendars in Calendar constant order; the generated name table is indexed
// by those constants.
var calendars = []calendarDef{
	{Name: "standard"},
	{Name: "proleptic_gregorian"},
	{Name: "julian"},
	{Name: "noleap", Ident: "CalendarNoLeap"},
	{Name: "all_leap"},
	{Name: "360_day"},
	{Name: "none"},
}

func (c calendarDef) ident() string {
	if c.Ident != "" {
		return c.Ident
	}
	return "Calendar" + strcase.ToCamel(c.Name)
}

type monthTable struct {
	Name string
	// Of describes the year shape, completing "the month lengths of ...".
	Of   string
	Days [12]int
}

var monthTables = []monthTable{
	{"daysPerMonth", "a non-leap year", [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}},
	{"daysPerMonthLeap", "a leap year", [12]int{31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}},
	{"daysPerMonth360", "the 360-day calendar", [12]int{30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30}},
}

func cumulative(days [12]int) [13]int {
	var cum [13]int
	for i, d := range days {
		cum[i+1] = cum[i] + d
	}
	return cum
}

// Tables builds the tables_gen.go file.
func Tables() *File {
	f := NewFile("cftime")
	f.HeaderComment("Code generated by internal/cmd/generate. DO NOT EDIT.")

	for _, t := range monthTables {
		f.Commentf("%s is the month lengths of %s.", t.Name, t.Of)
		f.Var().Id(t.Name).Op("=").Index(Lit(12)).Int().ValuesFunc(func(g *Group) {
			for _, d := range t.Days {
				g.Lit(d)
			}
		})
		f.Line()

		cumName := "cum" + strcase.ToCamel(t.Name)
		f.Commentf("%s[m] is the number of days before month m+1 in %s.", cumName, t.Of)
		f.Var().Id(cumName).Op("=").Index(Lit(13)).Int().ValuesFunc(func(g *Group) {
			for _, d := range cumulative(t.Days) {
				g.Lit(d)
			}
		})
		f.Line()
	}

	f.Comment("calendarNames maps a Calendar to its canonical CF name.")
	f.Var().Id("calendarNames").Op("=").Index(Op("...")).String().Values(DictFunc(func(d Dict) {
		for _, c := range calendars {
			d[Id(c.ident())] = Lit(c.Name)
		}
	}))

	return f
}

// Idents returns the calendar identifiers in constant order, for sanity
// checking against the hand-written constants.
func Idents() []string {
	idents := make([]string, len(calendars))
	for i, c := range calendars {
		idents[i] = c.ident()
	}
	return idents
}
