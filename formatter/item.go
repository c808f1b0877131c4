package formatter

import (
	"bytes"
	"strconv"
	"time"

	"github.com/lestrrat-go/strftime"

	"github.com/philipp01105/plog/core"
)

// ItemKind identifies what an Item renders
type ItemKind uint8

const (
	StringItem ItemKind = iota
	MessageItem
	LevelItem
	ElapsedItem
	LoggerNameItem
	ThreadIDItem
	FiberIDItem
	DateTimeItem
	FilenameItem
	LineItem
	NewLineItem
	PercentItem
	ErrorItem
)

var itemKindNames = [...]string{
	StringItem:     "String",
	MessageItem:    "Message",
	LevelItem:      "Level",
	ElapsedItem:    "Elapsed",
	LoggerNameItem: "LoggerName",
	ThreadIDItem:   "ThreadId",
	FiberIDItem:    "FiberId",
	DateTimeItem:   "DateTime",
	FilenameItem:   "Filename",
	LineItem:       "Line",
	NewLineItem:    "NewLine",
	PercentItem:    "Percent",
	ErrorItem:      "Error",
}

func (k ItemKind) String() string {
	if int(k) < len(itemKindNames) {
		return itemKindNames[k]
	}
	return "ItemKind(" + strconv.Itoa(int(k)) + ")"
}

// Item is one compiled rendering step. Text holds the literal of a String
// item, the marker of an Error item, and the layout of a DateTime item;
// other kinds carry no state. Items are immutable once built.
type Item struct {
	kind   ItemKind
	text   string
	layout *strftime.Strftime
}

// Kind returns the variant of the item
func (it Item) Kind() ItemKind { return it.kind }

// Text returns the literal, marker or date layout carried by the item
func (it Item) Text() string { return it.text }

// render appends the item's fragment for one event to buf
func (it Item) render(buf *bytes.Buffer, name string, level core.Level, ev *core.Event, loc *time.Location) {
	switch it.kind {
	case StringItem, ErrorItem:
		buf.WriteString(it.text)
	case LevelItem:
		buf.WriteString(core.LevelToString(level))
	case LoggerNameItem:
		buf.WriteString(name)
	case NewLineItem:
		buf.WriteByte('\n')
	case PercentItem:
		buf.WriteByte('%')
	}

	// Remaining kinds read the event
	if ev == nil {
		return
	}
	switch it.kind {
	case MessageItem:
		buf.Write(ev.MessageBytes())
	case ElapsedItem:
		buf.Write(strconv.AppendUint(buf.AvailableBuffer(), ev.Elapsed(), 10))
	case ThreadIDItem:
		buf.Write(strconv.AppendUint(buf.AvailableBuffer(), ev.ThreadID(), 10))
	case FiberIDItem:
		buf.Write(strconv.AppendUint(buf.AvailableBuffer(), ev.FiberID(), 10))
	case DateTimeItem:
		// Writes to a bytes.Buffer cannot fail
		_ = it.layout.Format(buf, time.Unix(ev.Time(), 0).In(loc))
	case FilenameItem:
		buf.WriteString(ev.File())
	case LineItem:
		buf.Write(strconv.AppendInt(buf.AvailableBuffer(), int64(ev.Line()), 10))
	}
}
