// Package meeting builds the typed knowledge graph of meeting records:
// workgroups, meetings, people, documents, agenda items, action items,
// decisions, topics and emotions, joined by labelled relations.
//
// The graph is meant for export (GEXF, DOT, JSON) and exploration in tools
// such as Gephi; no metrics are computed over it.
package meeting

import (
	"errors"
	"fmt"

	"github.com/SingularityNET-Archive/meetgraph/pkg/extract"
	"github.com/SingularityNET-Archive/meetgraph/pkg/graph"
	"github.com/SingularityNET-Archive/meetgraph/pkg/jsontree"
)

// Node types, stored under the "type" attribute.
const (
	TypeWorkgroup    = "Workgroup"
	TypeMeeting      = "Meeting"
	TypePerson       = "Person"
	TypeDocument     = "Document"
	TypeAgendaItem   = "AgendaItem"
	TypeActionItem   = "ActionItem"
	TypeDecisionItem = "DecisionItem"
	TypeTag          = "Tag"
	TypeEmotion      = "Emotion"
)

// Relation labels.
const (
	RelHasMeeting      = "has_meeting"
	RelHostedBy        = "hosted_by"
	RelDocumentedBy    = "documented_by"
	RelAttendedBy      = "attended_by"
	RelReferencesDoc   = "references_doc"
	RelHasAgenda       = "has_agenda"
	RelHasActionItem   = "has_actionItem"
	RelAssignedTo      = "assigned_to"
	RelHasDecisionItem = "has_decisionItem"
	RelTaggedWith      = "tagged_with"
)

// Placeholders for missing values.
const (
	UnknownHost       = "Unknown Host"
	UnknownDocumenter = "Unknown Documenter"
	UntitledDocument  = "Untitled Document"
	UnnamedAction     = "Unnamed Action"
	UnnamedDecision   = "Unnamed Decision"
	UnknownStatus     = "unknown"
)

// AttrType is the attribute key holding a node's type.
const AttrType = "type"

// itemIDLength is the number of runes kept from action and decision text
// when forming their node IDs.
const itemIDLength = 40

// Stats counts what [Build] saw.
type Stats struct {
	Records int
	// SkippedLinks counts relations dropped because both ends had the
	// same ID, e.g. a host who is also the workgroup name.
	SkippedLinks int
}

// Build returns the knowledge graph of records. Later records overwrite
// attributes set by earlier ones on shared nodes.
func Build(records []jsontree.Value) (*graph.Directed, Stats, error) {
	b := &builder{g: graph.NewDirected()}
	for _, rec := range records {
		if err := b.addRecord(rec); err != nil {
			return nil, b.stats, err
		}
		b.stats.Records++
	}
	return b.g, b.stats, nil
}

type builder struct {
	g     *graph.Directed
	stats Stats
}

func (b *builder) node(id, typ string, attrs ...string) error {
	b.g.AddNode(graph.NodeID(id))
	if err := b.g.SetAttr(graph.NodeID(id), AttrType, typ); err != nil {
		return err
	}
	for i := 0; i+1 < len(attrs); i += 2 {
		if err := b.g.SetAttr(graph.NodeID(id), attrs[i], attrs[i+1]); err != nil {
			return err
		}
	}
	return nil
}

func (b *builder) link(from, to, relation string) error {
	err := b.g.AddLabeledEdge(graph.NodeID(from), graph.NodeID(to), relation)
	if errors.Is(err, graph.ErrSelfLoop) {
		b.stats.SkippedLinks++
		return nil
	}
	return err
}

func (b *builder) addRecord(rec jsontree.Value) error {
	workgroup := orDefault(rec.StringField("workgroup"), extract.UnknownWorkgroup)
	meetingID := orDefault(rec.StringField("workgroup_id"), "MeetingID_"+workgroup)
	info := rec.Field("meetingInfo")

	if err := b.node(workgroup, TypeWorkgroup); err != nil {
		return err
	}
	if err := b.node(meetingID, TypeMeeting,
		"date", info.StringField("date"),
		"typeOfMeeting", info.StringField("typeOfMeeting"),
	); err != nil {
		return err
	}
	if err := b.link(workgroup, meetingID, RelHasMeeting); err != nil {
		return err
	}

	host := orDefault(info.StringField("host"), UnknownHost)
	documenter := orDefault(info.StringField("documenter"), UnknownDocumenter)
	for _, p := range []struct{ name, rel string }{{host, RelHostedBy}, {documenter, RelDocumentedBy}} {
		if err := b.node(p.name, TypePerson); err != nil {
			return err
		}
		if err := b.link(meetingID, p.name, p.rel); err != nil {
			return err
		}
	}

	for _, person := range extract.SplitList(info.StringField("peoplePresent")) {
		if err := b.node(person, TypePerson); err != nil {
			return err
		}
		if err := b.link(meetingID, person, RelAttendedBy); err != nil {
			return err
		}
	}

	for _, doc := range info.Field("workingDocs").Items() {
		title := orDefault(doc.StringField("title"), UntitledDocument)
		if err := b.node(title, TypeDocument, "link", doc.StringField("link")); err != nil {
			return err
		}
		if err := b.link(meetingID, title, RelReferencesDoc); err != nil {
			return err
		}
	}

	for _, agenda := range rec.Field("agendaItems").Items() {
		if err := b.addAgenda(meetingID, agenda); err != nil {
			return err
		}
	}

	tags := rec.Field("tags")
	for _, t := range []struct{ key, typ string }{{"topicsCovered", TypeTag}, {"emotions", TypeEmotion}} {
		for _, label := range extract.SplitList(tags.StringField(t.key)) {
			if err := b.node(label, t.typ); err != nil {
				return err
			}
			if err := b.link(meetingID, label, RelTaggedWith); err != nil {
				return err
			}
		}
	}
	return nil
}

func (b *builder) addAgenda(meetingID string, agenda jsontree.Value) error {
	status := orDefault(agenda.StringField("status"), UnknownStatus)
	agendaID := fmt.Sprintf("Agenda_%s_%s", status, meetingID)
	if err := b.node(agendaID, TypeAgendaItem, "status", status); err != nil {
		return err
	}
	if err := b.link(meetingID, agendaID, RelHasAgenda); err != nil {
		return err
	}

	for _, action := range agenda.Field("actionItems").Items() {
		actionID := ItemID(orDefault(action.StringField("text"), UnnamedAction))
		if err := b.node(actionID, TypeActionItem, "dueDate", action.StringField("dueDate")); err != nil {
			return err
		}
		if err := b.link(agendaID, actionID, RelHasActionItem); err != nil {
			return err
		}
		if assignee := action.StringField("assignee"); assignee != "" {
			if err := b.node(assignee, TypePerson); err != nil {
				return err
			}
			if err := b.link(actionID, assignee, RelAssignedTo); err != nil {
				return err
			}
		}
	}

	for _, decision := range agenda.Field("decisionItems").Items() {
		decisionID := ItemID(orDefault(decision.StringField("decision"), UnnamedDecision))
		var attrs []string
		for _, k := range []string{"effect", "rationale"} {
			if v := decision.Field(k); !v.IsNull() {
				attrs = append(attrs, k, scalarText(v))
			}
		}
		if err := b.node(decisionID, TypeDecisionItem, attrs...); err != nil {
			return err
		}
		if err := b.link(agendaID, decisionID, RelHasDecisionItem); err != nil {
			return err
		}
	}
	return nil
}

// ItemID forms the node ID of an action or decision from its text: the first
// 40 runes followed by "...".
func ItemID(text string) string {
	r := []rune(text)
	if len(r) > itemIDLength {
		r = r[:itemIDLength]
	}
	return string(r) + "..."
}

// scalarText renders v as an attribute value. Strings are used as is; other
// kinds become their JSON text.
func scalarText(v jsontree.Value) string {
	if v.Kind() == jsontree.String {
		return v.Str()
	}
	return v.String()
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
