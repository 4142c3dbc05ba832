package report_generator

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/kurochkinivan/support_reporter/internal/domain"
)

const absent = "-"

var (
	titleStyle  = props.Text{Size: 14, Style: fontstyle.Bold, Align: align.Center}
	headerStyle = props.Text{Size: 9, Style: fontstyle.Bold}
	cellStyle   = props.Text{Size: 9}
	labelStyle  = props.Text{Size: 10, Style: fontstyle.Bold}
	valueStyle  = props.Text{Size: 10}
)

// PDF renders one support point as a single document.
type PDF struct{}

func NewPDF() *PDF {
	return &PDF{}
}

func (g *PDF) Extension() string {
	return ".pdf"
}

func (g *PDF) GenerateReport(outputPath, sourceFile string, record *domain.ParsedRecord) error {
	m := maroto.New(config.NewBuilder().
		WithLeftMargin(10).
		WithRightMargin(10).
		WithTopMargin(10).
		Build())

	m.AddRows(g.build(sourceFile, record)...)

	doc, err := m.Generate()
	if err != nil {
		return fmt.Errorf("failed to generate pdf: %w", err)
	}

	if err := doc.Save(outputPath); err != nil {
		return fmt.Errorf("failed to save pdf %q: %w", outputPath, err)
	}

	return nil
}

func (g *PDF) build(sourceFile string, record *domain.ParsedRecord) []core.Row {
	sp := record.SupportPoint

	rows := []core.Row{
		text.NewRow(12, "Support point: "+or(record.TestID), titleStyle),
		row.New(4),
		field("Source file", sourceFile),
		field("Date", sp.Date),
		field("Assistive technology", or(record.AT)+" "+or(sp.ATVersion)),
		field("Browser", or(record.Browser)+" "+or(sp.BrowserVersion)),
		field("OS version", or(sp.OSVersion)),
		field("Support", or(sp.Support)),
		row.New(6),
		row.New(7).Add(
			text.NewCol(1, "#", headerStyle),
			text.NewCol(3, "Command", headerStyle),
			text.NewCol(2, "Command name", headerStyle),
			text.NewCol(4, "Output", headerStyle),
			text.NewCol(2, "Result", headerStyle),
		),
	}

	for i, e := range sp.Output {
		rows = append(rows, row.New(6).Add(
			text.NewCol(1, fmt.Sprint(i+1), cellStyle),
			text.NewCol(3, or(e.Command), cellStyle),
			text.NewCol(2, or(e.CommandName), cellStyle),
			text.NewCol(4, or(e.Output), cellStyle),
			text.NewCol(2, or(e.Result), cellStyle),
		))
	}

	if sp.Notes != nil {
		rows = append(rows,
			row.New(6),
			text.NewRow(7, "Notes", labelStyle),
			text.NewRow(6, *sp.Notes, valueStyle),
		)
	}

	return rows
}

func field(label, value string) core.Row {
	return row.New(6).Add(
		text.NewCol(4, label, labelStyle),
		text.NewCol(8, value, valueStyle),
	)
}

func or(s *string) string {
	if s == nil || *s == "" {
		return absent
	}
	return *s
}
