package main

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"cloud.google.com/go/firestore/apiv1/firestorepb"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/firestore-codec/transcoder"
)

type styles struct {
	kind  lipgloss.Style
	key   lipgloss.Style
	value lipgloss.Style
	guide lipgloss.Style
	title lipgloss.Style
	err   lipgloss.Style
	help  lipgloss.Style
}

func newStyles(color bool) styles {
	if !color {
		plain := lipgloss.NewStyle()
		return styles{kind: plain, key: plain, value: plain, guide: plain, title: plain, err: plain, help: plain}
	}
	return styles{
		kind:  lipgloss.NewStyle().Foreground(lipgloss.Color("#87CEEB")),
		key:   lipgloss.NewStyle().Foreground(lipgloss.Color("#98FB98")),
		value: lipgloss.NewStyle().Foreground(lipgloss.Color("#FAFAFA")),
		guide: lipgloss.NewStyle().Foreground(lipgloss.Color("#666666")),
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1),
		err:  lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")),
		help: lipgloss.NewStyle().Foreground(lipgloss.Color("#666666")),
	}
}

// renderTree draws v as an indented tree, one wire value per line.
func renderTree(v *firestorepb.Value, st styles) string {
	var b strings.Builder
	b.WriteString(describe(v, st))
	b.WriteString("\n")
	writeChildren(&b, v, "", st)
	return b.String()
}

func writeChildren(b *strings.Builder, v *firestorepb.Value, prefix string, st styles) {
	type child struct {
		label string
		value *firestorepb.Value
	}
	var children []child
	switch t := v.GetValueType().(type) {
	case *firestorepb.Value_ArrayValue:
		for i, e := range t.ArrayValue.GetValues() {
			children = append(children, child{strconv.Itoa(i), e})
		}
	case *firestorepb.Value_MapValue:
		fields := t.MapValue.GetFields()
		for _, k := range transcoder.SortedKeys(fields) {
			children = append(children, child{strconv.Quote(k), fields[k]})
		}
	}

	for i, c := range children {
		branch, indent := "├─ ", "│  "
		if i == len(children)-1 {
			branch, indent = "└─ ", "   "
		}
		b.WriteString(st.guide.Render(prefix + branch))
		b.WriteString(st.key.Render(c.label))
		b.WriteString(": ")
		b.WriteString(describe(c.value, st))
		b.WriteString("\n")
		writeChildren(b, c.value, prefix+indent, st)
	}
}

func describe(v *firestorepb.Value, st styles) string {
	kind := st.kind.Render(transcoder.KindName(v))
	var text string
	switch t := v.GetValueType().(type) {
	case *firestorepb.Value_BooleanValue:
		text = strconv.FormatBool(t.BooleanValue)
	case *firestorepb.Value_IntegerValue:
		text = strconv.FormatInt(t.IntegerValue, 10)
	case *firestorepb.Value_DoubleValue:
		text = strconv.FormatFloat(t.DoubleValue, 'g', -1, 64)
	case *firestorepb.Value_StringValue:
		text = strconv.Quote(t.StringValue)
	case *firestorepb.Value_BytesValue:
		text = "0x" + hex.EncodeToString(t.BytesValue)
	case *firestorepb.Value_ReferenceValue:
		text = t.ReferenceValue
	case *firestorepb.Value_TimestampValue:
		if t.TimestampValue != nil {
			text = fmt.Sprintf("%s (%d, %d)", t.TimestampValue.AsTime().Format("2006-01-02T15:04:05.999999999Z07:00"),
				t.TimestampValue.GetSeconds(), t.TimestampValue.GetNanos())
		}
	case *firestorepb.Value_GeoPointValue:
		if t.GeoPointValue != nil {
			text = fmt.Sprintf("(%g, %g)", t.GeoPointValue.GetLatitude(), t.GeoPointValue.GetLongitude())
		}
	case *firestorepb.Value_ArrayValue:
		return kind + st.guide.Render(fmt.Sprintf("[%d]", len(t.ArrayValue.GetValues())))
	case *firestorepb.Value_MapValue:
		return kind + st.guide.Render(fmt.Sprintf("{%d}", len(t.MapValue.GetFields())))
	}
	if text == "" {
		return kind
	}
	return kind + " " + st.value.Render(text)
}
