// Package export turns a playground configuration into a resz code snippet.
package export

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexisbeaulieu97/reszplay/internal/playground"
)

// Library defaults; attributes equal to these are left out of the snippet.
const (
	LibraryDefaultWidth  = 300
	LibraryDefaultHeight = 200
	LibraryDefaultPreset = playground.SpringSmooth
)

const (
	propIndent       = "      "
	nestedIndent     = "        "
	closingPropBrace = "      }}"
)

// Serialize renders cfg as a TSX snippet using the resz component. The
// output depends only on cfg, so equal configurations give identical text.
func Serialize(cfg playground.Config) string {
	props := Attributes(cfg)

	handles := cfg.CanonicalHandles()
	imports := "Resize"
	if len(handles) > 0 {
		imports = "Resize, Handle"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "import { %s } from 'resz'\n", imports)
	b.WriteString("\n")
	b.WriteString("export function MyResizablePanel() {\n")
	b.WriteString("  return (\n")
	b.WriteString("    <Resize")
	for _, prop := range props {
		b.WriteString("\n")
		b.WriteString(propIndent)
		b.WriteString(prop)
	}
	b.WriteString("\n    >\n")
	b.WriteString("      <div style={{ padding: '20px' }}>\n")
	b.WriteString("        {/* Your content here */}\n")
	b.WriteString("      </div>\n")
	if len(handles) > 0 {
		b.WriteString("\n")
		for _, dir := range handles {
			fmt.Fprintf(&b, "      <Handle dir=%q />\n", string(dir))
		}
	} else {
		b.WriteString("\n")
	}
	b.WriteString("    </Resize>\n")
	b.WriteString("  )\n")
	b.WriteString("}")

	return b.String()
}

// Attributes returns the ordered attribute assignments of the root element.
// Default-valued fields produce no attribute.
func Attributes(cfg playground.Config) []string {
	var props []string

	if cfg.InitialWidth != LibraryDefaultWidth {
		props = append(props, fmt.Sprintf("initialWidth={%s}", formatNumber(cfg.InitialWidth)))
	}
	if cfg.InitialHeight != LibraryDefaultHeight {
		props = append(props, fmt.Sprintf("initialHeight={%s}", formatNumber(cfg.InitialHeight)))
	}

	switch {
	case cfg.SpringSelection == playground.SpringCustom:
		p := cfg.SpringParams
		props = append(props, "config={{\n"+
			nestedIndent+"tension: "+formatNumber(p.Tension)+",\n"+
			nestedIndent+"friction: "+formatNumber(p.Friction)+",\n"+
			nestedIndent+"mass: "+formatNumber(p.Mass)+"\n"+
			closingPropBrace)
	case cfg.SpringSelection != "" && cfg.SpringSelection != LibraryDefaultPreset:
		props = append(props, fmt.Sprintf("preset=%q", string(cfg.SpringSelection)))
	}

	if block := constraintsAttribute(cfg); block != "" {
		props = append(props, block)
	}

	return props
}

func constraintsAttribute(cfg playground.Config) string {
	entries := ConstraintEntries(cfg)
	switch len(entries) {
	case 0:
		return ""
	case 1:
		return "constraints={{ " + entries[0] + " }}"
	default:
		return "constraints={{\n" +
			nestedIndent + strings.Join(entries, ",\n"+nestedIndent) + "\n" +
			closingPropBrace
	}
}

// ConstraintEntries returns the rendered min, max and aspectRatio entries
// that are both switched on and carry a value.
func ConstraintEntries(cfg playground.Config) []string {
	active := cfg.ActiveConstraints()

	var entries []string
	if entry := sizeEntry("min", active.Min); entry != "" {
		entries = append(entries, entry)
	}
	if entry := sizeEntry("max", active.Max); entry != "" {
		entries = append(entries, entry)
	}
	if active.AspectRatio != nil {
		entries = append(entries, "aspectRatio: "+formatNumber(*active.AspectRatio))
	}
	return entries
}

func sizeEntry(name string, size *playground.Size) string {
	if size == nil {
		return ""
	}
	var fields []string
	if size.Width != nil && *size.Width != 0 {
		fields = append(fields, "width: "+formatNumber(*size.Width))
	}
	if size.Height != nil && *size.Height != 0 {
		fields = append(fields, "height: "+formatNumber(*size.Height))
	}
	if len(fields) == 0 {
		return ""
	}
	return name + ": { " + strings.Join(fields, ", ") + " }"
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
