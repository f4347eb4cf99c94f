package extract

import (
	"cmp"
	"slices"
	"strings"

	"github.com/SingularityNET-Archive/meetgraph/pkg/jsontree"
)

// Placeholders substituted for missing record fields.
const (
	UnknownWorkgroup = "Unknown Workgroup"
	UnknownDate      = "Unknown Date"
	UntitledMeeting  = "Untitled Meeting"
)

// WorkgroupCount is one row of a tally.
type WorkgroupCount struct {
	Name  string
	Count int
}

// WorkgroupTally accumulates workgroup mentions. It is an explicit value
// threaded through the counting passes; the zero value is ready to use.
type WorkgroupTally struct {
	order    []string
	counts   map[string]int
	meetings map[string][]string
}

// Add records one mention of name.
func (t *WorkgroupTally) Add(name string) {
	if t.counts == nil {
		t.counts = make(map[string]int)
	}
	if _, ok := t.counts[name]; !ok {
		t.order = append(t.order, name)
	}
	t.counts[name]++
}

// Count returns how many mentions of name were recorded.
func (t *WorkgroupTally) Count(name string) int { return t.counts[name] }

// Len returns the number of distinct workgroups.
func (t *WorkgroupTally) Len() int { return len(t.order) }

// Meetings returns the "date - title" lines collected for name by
// [WorkgroupTally.CountRecords].
func (t *WorkgroupTally) Meetings(name string) []string { return t.meetings[name] }

// Sorted returns the tally ordered by count descending; ties keep first-seen
// order.
func (t *WorkgroupTally) Sorted() []WorkgroupCount {
	rows := make([]WorkgroupCount, len(t.order))
	for i, name := range t.order {
		rows[i] = WorkgroupCount{Name: name, Count: t.counts[name]}
	}
	slices.SortStableFunc(rows, func(a, b WorkgroupCount) int {
		return cmp.Compare(b.Count, a.Count)
	})
	return rows
}

// CountRecords tallies the record-level "workgroup" field of each record and
// collects one "date - title" line per meeting. Records without a workgroup
// count under [UnknownWorkgroup].
func (t *WorkgroupTally) CountRecords(records []jsontree.Value) {
	if t.meetings == nil {
		t.meetings = make(map[string][]string)
	}
	for _, rec := range records {
		if rec.Kind() != jsontree.Object {
			continue
		}
		name := strings.TrimSpace(rec.StringField("workgroup"))
		if name == "" {
			name = UnknownWorkgroup
		}
		t.Add(name)
		t.meetings[name] = append(t.meetings[name], MeetingDate(rec)+" - "+MeetingTitle(rec))
	}
}

// CountNested walks v and tallies every string stored under a key named
// "workgroup" or "workgroups" (case-insensitive) at any depth. List values
// contribute each string item; values under a matching key are not searched
// further. Names are trimmed, and a blank name is tallied as "".
func (t *WorkgroupTally) CountNested(v jsontree.Value) {
	switch v.Kind() {
	case jsontree.Object:
		for _, m := range v.Members() {
			if isWorkgroupKey(m.Key) {
				t.addMentions(m.Value)
				continue
			}
			t.CountNested(m.Value)
		}
	case jsontree.Array:
		for _, item := range v.Items() {
			t.CountNested(item)
		}
	case jsontree.String, jsontree.Number, jsontree.Bool, jsontree.Null:
	}
}

// addMentions counts a string, or each string item of a list, after
// trimming. Blank names are counted too.
func (t *WorkgroupTally) addMentions(v jsontree.Value) {
	switch v.Kind() {
	case jsontree.String:
		t.Add(strings.TrimSpace(v.Str()))
	case jsontree.Array:
		for _, item := range v.Items() {
			if item.Kind() == jsontree.String {
				t.Add(strings.TrimSpace(item.Str()))
			}
		}
	case jsontree.Object, jsontree.Number, jsontree.Bool, jsontree.Null:
	}
}

func isWorkgroupKey(k string) bool {
	k = strings.ToLower(k)
	return k == "workgroup" || k == "workgroups"
}

// MeetingTitle returns the first non-empty of title, summary and
// meetingInfo.typeOfMeeting, or [UntitledMeeting].
func MeetingTitle(rec jsontree.Value) string {
	for _, s := range []string{
		rec.StringField("title"),
		rec.StringField("summary"),
		rec.Field("meetingInfo").StringField("typeOfMeeting"),
	} {
		if s = strings.TrimSpace(s); s != "" {
			return s
		}
	}
	return UntitledMeeting
}

// MeetingDate returns meetingInfo.date, falling back to a top-level "date"
// and then to [UnknownDate].
func MeetingDate(rec jsontree.Value) string {
	for _, s := range []string{
		rec.Field("meetingInfo").StringField("date"),
		rec.StringField("date"),
	} {
		if s = strings.TrimSpace(s); s != "" {
			return s
		}
	}
	return UnknownDate
}
