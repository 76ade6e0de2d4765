package export

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/emersion/go-ical"
	"github.com/tartampluch/go-contacts/internal/book"
	"github.com/tartampluch/go-contacts/internal/config"
)

// WriteCalendar encodes greetings as all-day events dated on their greeting
// day. now stamps DTSTAMP.
func WriteCalendar(w io.Writer, greetings []book.Greeting, now time.Time) error {
	if len(greetings) == 0 {
		// A valid, empty VCALENDAR keeps calendar clients from flagging the feed.
		_, err := io.WriteString(w, config.StubVCalendar)
		return err
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ICalProdid)
	cal.Props.SetText(config.PropXWRCalName, config.ICalCalName)
	cal.Props.SetText(config.PropCalScale, config.ICalScale)
	cal.Props.SetText(config.PropMethod, config.ICalMethod)

	dtStampProp := ical.NewProp(config.PropDTStamp)
	dtStampProp.SetDateTime(now.UTC())

	for _, g := range greetings {
		event := ical.NewEvent()
		event.Props.SetText(config.PropUID,
			fmt.Sprintf(config.FormatUID, ContactUID(g.Name), g.Occurrence.Year(), config.ICalDomain))
		event.Props.SetText(config.PropSummary, fmt.Sprintf(config.FormatSummary, g.Name))

		dtStartProp := ical.NewProp(config.PropDTStart)
		dtStartProp.SetDate(g.GreetingDate)
		event.Props.Set(dtStartProp)
		event.Props.Set(dtStampProp)

		cal.Children = append(cal.Children, event.Component)
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}

	slog.Debug(config.MsgCalendarBuilt,
		config.LogKeyComponent, config.CompExport,
		config.LogKeyCount, len(greetings))

	_, err := w.Write(buf.Bytes())
	return err
}
