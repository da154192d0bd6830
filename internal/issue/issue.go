// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"cmp"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Id int

const (
	ConfigLoadFailedId Id = iota + 1
	GarageFileNotFoundId
	GarageFileInvalidId
	CarNotFoundId
	ValueOutOfRangeId
	FuelChangeRejectedId
	WheelsInconsistentId
)

type MarkdownMsg string

type HttpLink string

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

// Render renders the issue's Markdown with the glamour style at stylePath
// ("dark", "light", "notty", or a JSON style file).
func (i *Issue) Render(stylePath string) (string, error) {
	md := string(i.mdMsg)
	if len(i.docLinks) > 0 {
		md += "\n\n## See also:\n"
		for _, link := range i.docLinks {
			md += "- <" + string(link) + ">\n"
		}
	}
	return render(md, stylePath)
}

var (
	render = glamour.Render

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

The configuration file could not be read or does not match the schema.

## Things you can try:
- Print a valid configuration and compare:
~~~
$ garage config dump
~~~

- Recreate the default file:
~~~
$ garage config init
~~~

- Check GARAGE_* environment variables, they override the file.`,
	}

	garageFileNotFoundIssue = &Issue{
		id: GarageFileNotFoundId,
		mdMsg: `
# No garage file found!

The garage file configured with 'garage_file' (or passed with --file) does not exist.

## Things you can try:
- Create a garage.cue in the current directory:
~~~cue
cars: [{
	name:       "x5"
	make:       "BMW"
	model:      "X5"
	horsepower: 375
	fuel:       "Diesel"
	body:       "Sedan"
	doors:      4
	diameter:   21
	tires:      "Summer"
}]
~~~

- Point the configuration at an existing file:
~~~
$ garage config set garage_file /path/to/garage.cue
~~~`,
	}

	garageFileInvalidIssue = &Issue{
		id: GarageFileInvalidId,
		mdMsg: `
# Invalid garage file!

The garage file does not match the expected schema.

## Valid ranges:
- horsepower: 1 to 600
- doors: 1 to 8
- diameter: 14 to 30 inches

## Valid values:
- fuel: Petrol, Diesel, Electro
- body: Coupe, SUV, Convertible, Pickup, MPV, Minivan, Sedan
- tires: Summer, Winter, All-Seasoned`,
	}

	carNotFoundIssue = &Issue{
		id: CarNotFoundId,
		mdMsg: `
# Car not found!

No car with that name is declared in the garage file.

## Things you can try:
- List the available cars:
~~~
$ garage list
~~~

- Omit --car to use the configured default (or the first car).`,
	}

	valueOutOfRangeIssue = &Issue{
		id: ValueOutOfRangeId,
		mdMsg: `
# Value not accepted!

| Quantity   | Minimum | Maximum |
|------------|---------|---------|
| horsepower | 1       | 600     |
| doors      | 1       | 8       |
| diameter   | 14      | 30      |

Fuel is one of Petrol, Diesel or Electro. Tires are Summer, Winter or All-Seasoned.`,
	}

	fuelChangeRejectedIssue = &Issue{
		id: FuelChangeRejectedId,
		mdMsg: `
# Fuel change rejected!

An electric engine stays electric, and a combustion engine cannot be switched to Electro.
Only Petrol and Diesel can be swapped for each other.`,
	}

	wheelsInconsistentIssue = &Issue{
		id: WheelsInconsistentId,
		mdMsg: `
# Wheels do not match!

All wheels must share the same diameter and tire type before wheel information can be shown.

## Things you can try:
- Fit the same wheels all round:
~~~
$ garage rewheel 19 summer
~~~`,
	}

	issues = map[Id]*Issue{
		configLoadFailedIssue.Id():   configLoadFailedIssue,
		garageFileNotFoundIssue.Id(): garageFileNotFoundIssue,
		garageFileInvalidIssue.Id():  garageFileInvalidIssue,
		carNotFoundIssue.Id():        carNotFoundIssue,
		valueOutOfRangeIssue.Id():    valueOutOfRangeIssue,
		fuelChangeRejectedIssue.Id(): fuelChangeRejectedIssue,
		wheelsInconsistentIssue.Id(): wheelsInconsistentIssue,
	}
)

// Values returns every catalog entry ordered by id.
func Values() []*Issue {
	out := maps.Values(issues)
	slices.SortFunc(out, func(a, b *Issue) int { return cmp.Compare(a.id, b.id) })
	return out
}

func Get(id Id) *Issue {
	return issues[id]
}
