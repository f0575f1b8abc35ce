// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/cpm-tools/vault-console/internal/validators"
	"github.com/cpm-tools/vault-console/models"
)

// exportFieldCatalog lists the account columns the report endpoint can
// render, in the order they appear in the generated file.
var exportFieldCatalog = []string{
	"name",
	"owner",
	"system_type",
	"hostname",
	"port",
	"safe",
	"username",
	"rotation_status",
	"rotation_policy_id",
	"validation_status",
	"verification_error",
}

var exportFormats = []models.ExportFormat{
	models.FormatCSV, models.FormatXLSX, models.FormatJSON, models.FormatPDF,
}

// exportRanges are the selectable look-back windows in days; zero means no
// date filter.
var exportRanges = []int{0, 7, 30, 90}

type exportModel struct {
	presets []models.ExportPreset
	history []models.ExportHistoryEntry
	idx     int

	// options is the editable configuration the export runs with. Applying
	// a preset replaces it wholesale.
	options  models.ExportOptions
	rangeIdx int

	// focusFields moves the cursor from the preset list into the field
	// checklist.
	focusFields bool
	fieldIdx    int

	naming    bool
	nameInput textinput.Model
	validator validators.Validator

	loading   bool
	exporting bool
	spinner   spinner.Model
	status    string
	statusOK  bool
}

func newExportModel() exportModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	nameInput := textinput.New()
	nameInput.Placeholder = "preset name"
	nameInput.Width = 30

	m := exportModel{
		spinner:   s,
		loading:   true,
		nameInput: nameInput,
		validator: validators.NewAccountValidator(),
	}
	return m.applyPreset(models.BuiltinPresets()[0])
}

func (m exportModel) current() (models.ExportPreset, bool) {
	if len(m.presets) == 0 || m.idx < 0 || m.idx >= len(m.presets) {
		return models.ExportPreset{}, false
	}
	return m.presets[m.idx], true
}

// applyPreset replaces the whole configuration with the preset's options.
// The field list is copied so later toggles never mutate the stored preset.
func (m exportModel) applyPreset(p models.ExportPreset) exportModel {
	opts := p.Options
	opts.Fields = append([]string(nil), p.Options.Fields...)
	m.options = opts
	m.fieldIdx = 0

	m.rangeIdx = 0
	if opts.DateFrom != nil && opts.DateTo != nil {
		span := int(opts.DateTo.Sub(*opts.DateFrom).Hours() / 24)
		for i, days := range exportRanges {
			if days == span {
				m.rangeIdx = i
			}
		}
	}
	return m
}

func (m exportModel) hasField(name string) bool {
	for _, f := range m.options.Fields {
		if f == name {
			return true
		}
	}
	return false
}

// toggleField flips one column and rebuilds the selection in catalog order.
// Fields outside the catalog (audit columns) ride along untouched.
func (m exportModel) toggleField(name string) exportModel {
	selected := make(map[string]bool, len(m.options.Fields)+1)
	for _, f := range m.options.Fields {
		selected[f] = true
	}
	selected[name] = !selected[name]

	fields := make([]string, 0, len(exportFieldCatalog))
	for _, f := range exportFieldCatalog {
		if selected[f] {
			fields = append(fields, f)
			delete(selected, f)
		}
	}
	for _, f := range m.options.Fields {
		if selected[f] {
			fields = append(fields, f)
		}
	}
	m.options.Fields = fields
	return m
}

func (m exportModel) cycleFormat() exportModel {
	for i, f := range exportFormats {
		if m.options.Format == f {
			m.options.Format = exportFormats[(i+1)%len(exportFormats)]
			return m
		}
	}
	m.options.Format = exportFormats[0]
	return m
}

// cycleDateRange steps through the look-back windows, anchoring the range
// at now.
func (m exportModel) cycleDateRange(now time.Time) exportModel {
	m.rangeIdx = (m.rangeIdx + 1) % len(exportRanges)
	days := exportRanges[m.rangeIdx]
	if days == 0 {
		m.options.DateFrom = nil
		m.options.DateTo = nil
		return m
	}

	from := now.AddDate(0, 0, -days)
	m.options.DateFrom = &from
	m.options.DateTo = &now
	return m
}

func (m exportModel) rangeLabel() string {
	days := exportRanges[m.rangeIdx]
	if days == 0 {
		return "all time"
	}
	return fmt.Sprintf("last %d days", days)
}

// buildPreset snapshots the current configuration under the given name.
func (m exportModel) buildPreset(name string) models.ExportPreset {
	opts := m.options
	opts.Preset = name
	opts.Fields = append([]string(nil), m.options.Fields...)
	return models.ExportPreset{Name: name, Options: opts}
}

func presetSummary(p models.ExportPreset) string {
	parts := []string{strings.ToUpper(string(p.Options.Format))}
	if p.Options.OnlyFailures {
		parts = append(parts, "failures only")
	}
	if p.Options.OnlyOverdue {
		parts = append(parts, "overdue only")
	}
	if p.Options.IncludeAudit {
		parts = append(parts, "with audit trail")
	}
	return strings.Join(parts, ", ")
}

func checkbox(label string, on bool) string {
	if on {
		return "[x] " + label
	}
	return "[ ] " + label
}

func (m exportModel) View() string {
	out := titleStyle.Render("Export report") + "\n\n"

	if m.loading {
		return out + m.spinner.View() + " Loading presets...\n"
	}

	out += "Presets " + helpStyle.Render("(enter replaces the configuration)") + "\n"
	for i, preset := range m.presets {
		cursor := "  "
		if !m.focusFields && i == m.idx {
			cursor = "> "
		}
		out += fmt.Sprintf("%s%-20s %s\n", cursor, preset.Name, helpStyle.Render(presetSummary(preset)))
	}

	out += "\nConfiguration\n"
	out += fmt.Sprintf("  Format: %-5s  Range: %-12s  %s  %s  %s\n",
		strings.ToUpper(string(m.options.Format)),
		m.rangeLabel(),
		checkbox("failures only", m.options.OnlyFailures),
		checkbox("overdue only", m.options.OnlyOverdue),
		checkbox("audit trail", m.options.IncludeAudit))
	out += "  Fields:\n"
	for i, f := range exportFieldCatalog {
		cursor := "  "
		if m.focusFields && i == m.fieldIdx {
			cursor = "> "
		}
		out += "  " + cursor + checkbox(f, m.hasField(f)) + "\n"
	}

	if m.naming {
		out += "\nSave preset as: [" + m.nameInput.View() + "]\n"
	}

	if m.exporting {
		out += "\n" + m.spinner.View() + " Generating report...\n"
	}

	if m.status != "" {
		out += "\n"
		if m.statusOK {
			out += okStyle.Render(m.status) + "\n"
		} else {
			out += badStyle.Render(m.status) + "\n"
		}
	}

	if len(m.history) > 0 {
		out += "\n" + titleStyle.Render("Recent exports") + "\n"
		for _, entry := range m.history {
			out += fmt.Sprintf("%s  %-44s %d records\n",
				entry.ExportedAt.Format("2006-01-02 15:04"),
				truncate(entry.FileName, 44),
				entry.RecordCount)
		}
	}

	if m.naming {
		out += "\n" + helpStyle.Render("enter save  esc cancel")
	} else {
		out += "\n" + helpStyle.Render("x export  enter apply/toggle  tab switch pane  f format  D range  F failures  O overdue  A audit  s save preset  esc back")
	}
	return out
}
