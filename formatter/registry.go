package formatter

import (
	"github.com/lestrrat-go/strftime"
	"github.com/pkg/errors"
)

// DefaultDateLayout is the strftime layout of a bare %d
const DefaultDateLayout = "%Y-%m-%d %H:%M:%S"

// Factory builds an item from a directive's sub-format argument
type Factory func(arg string) (Item, error)

// registry maps directive names to item factories. It is built at package
// initialisation and never modified, so lookups need no locking.
var registry = map[string]Factory{
	"m": fixed(MessageItem),
	"p": fixed(LevelItem),
	"r": fixed(ElapsedItem),
	"c": fixed(LoggerNameItem),
	"t": fixed(ThreadIDItem),
	"F": fixed(FiberIDItem),
	"n": fixed(NewLineItem),
	"d": newDateTimeItem,
	"f": fixed(FilenameItem),
	"l": fixed(LineItem),
	// Tokenize consumes "%%" as an escape first, so compiled patterns never
	// reach this entry; it serves direct Lookup callers.
	"%": fixed(PercentItem),
}

// Lookup returns the factory registered for a directive name
func Lookup(name string) (Factory, bool) {
	f, ok := registry[name]
	return f, ok
}

func fixed(kind ItemKind) Factory {
	return func(string) (Item, error) {
		return Item{kind: kind}, nil
	}
}

func newDateTimeItem(arg string) (Item, error) {
	if arg == "" {
		arg = DefaultDateLayout
	}
	// %s is epoch seconds as in C strftime
	layout, err := strftime.New(arg, strftime.WithUnixSeconds('s'))
	if err != nil {
		return Item{}, errors.Wrapf(err, "invalid date layout %q", arg)
	}
	return Item{kind: DateTimeItem, text: arg, layout: layout}, nil
}

func errorItem(directive string) Item {
	return Item{kind: ErrorItem, text: "<<error_format " + directive + ">>"}
}
