package meeting

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/SingularityNET-Archive/meetgraph/pkg/graph"
	"github.com/SingularityNET-Archive/meetgraph/pkg/jsontree"
)

const sample = `[{
	"workgroup": "Archives",
	"workgroup_id": "m-1",
	"meetingInfo": {
		"date": "2025-01-07",
		"typeOfMeeting": "Weekly",
		"host": "Ann",
		"peoplePresent": "Ann, Ben, ",
		"workingDocs": [{"title": "Notes", "link": "https://example.org/notes"}, {}]
	},
	"agendaItems": [{
		"status": "carry over",
		"actionItems": [{"text": "Publish the quarterly archive summary for every workgroup", "assignee": "Ben", "dueDate": "2025-02-01"}],
		"decisionItems": [{"decision": "Adopt template", "effect": "affectsOnlyThisWorkgroup", "rationale": null}]
	}],
	"tags": {"topicsCovered": "archiving, templates", "emotions": "calm"}
}]`

func build(t *testing.T, src string) (*graph.Directed, Stats) {
	t.Helper()
	doc, err := jsontree.Parse([]byte(src))
	if err != nil {
		t.Fatal(err)
	}
	g, stats, err := Build(doc.Items())
	if err != nil {
		t.Fatal(err)
	}
	return g, stats
}

func TestBuildRelations(t *testing.T) {
	g, stats := build(t, sample)
	if stats.Records != 1 {
		t.Errorf("Records = %d, want 1", stats.Records)
	}

	actionID := "Publish the quarterly archive summary fo..."
	agendaID := "Agenda_carry over_m-1"
	want := []graph.Edge{
		{From: "Archives", To: "m-1", Label: RelHasMeeting},
		{From: "m-1", To: "Ann", Label: RelAttendedBy},
		{From: "m-1", To: UnknownDocumenter, Label: RelDocumentedBy},
		{From: "m-1", To: "Ben", Label: RelAttendedBy},
		{From: "m-1", To: "Notes", Label: RelReferencesDoc},
		{From: "m-1", To: UntitledDocument, Label: RelReferencesDoc},
		{From: "m-1", To: graph.NodeID(agendaID), Label: RelHasAgenda},
		{From: graph.NodeID(agendaID), To: graph.NodeID(actionID), Label: RelHasActionItem},
		{From: graph.NodeID(actionID), To: "Ben", Label: RelAssignedTo},
		{From: graph.NodeID(agendaID), To: "Adopt template...", Label: RelHasDecisionItem},
		{From: "m-1", To: "archiving", Label: RelTaggedWith},
		{From: "m-1", To: "templates", Label: RelTaggedWith},
		{From: "m-1", To: "calm", Label: RelTaggedWith},
	}
	if diff := cmp.Diff(want, g.Edges()); diff != "" {
		t.Errorf("Edges (-want +got):\n%s", diff)
	}
}

func TestBuildAttributes(t *testing.T) {
	g, _ := build(t, sample)

	tests := []struct {
		node graph.NodeID
		want graph.Attrs
	}{
		{"Archives", graph.Attrs{"type": TypeWorkgroup}},
		{"m-1", graph.Attrs{"type": TypeMeeting, "date": "2025-01-07", "typeOfMeeting": "Weekly"}},
		{"Notes", graph.Attrs{"type": TypeDocument, "link": "https://example.org/notes"}},
		{"Agenda_carry over_m-1", graph.Attrs{"type": TypeAgendaItem, "status": "carry over"}},
		{"Adopt template...", graph.Attrs{"type": TypeDecisionItem, "effect": "affectsOnlyThisWorkgroup"}},
		{"calm", graph.Attrs{"type": TypeEmotion}},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, g.NodeAttrs(tt.node)); diff != "" {
			t.Errorf("NodeAttrs(%s) (-want +got):\n%s", tt.node, diff)
		}
	}
}

func TestBuildPlaceholders(t *testing.T) {
	g, _ := build(t, `[{"agendaItems": [{"actionItems": [{}]}]}]`)

	for _, id := range []graph.NodeID{
		"Unknown Workgroup",
		"MeetingID_Unknown Workgroup",
		UnknownHost,
		UnknownDocumenter,
		"Agenda_unknown_MeetingID_Unknown Workgroup",
		"Unnamed Action...",
	} {
		if !g.HasNode(id) {
			t.Errorf("missing placeholder node %q", id)
		}
	}
}

func TestBuildSkipsSelfLinks(t *testing.T) {
	g, stats := build(t, `[{"workgroup": "Ann", "workgroup_id": "Ann", "meetingInfo": {"host": "Ann"}}]`)
	if stats.SkippedLinks != 2 {
		t.Errorf("SkippedLinks = %d, want 2", stats.SkippedLinks)
	}
	if got := g.NodeAttrs("Ann")["type"]; got != TypePerson {
		t.Errorf("type of shared node = %q, want the last one set (%s)", got, TypePerson)
	}
}

func TestItemID(t *testing.T) {
	if got := ItemID("short"); got != "short..." {
		t.Errorf("ItemID(short) = %q", got)
	}
	long := strings.Repeat("é", 50)
	if got := ItemID(long); got != strings.Repeat("é", 40)+"..." {
		t.Errorf("ItemID should cut at 40 runes, got %q", got)
	}
}
