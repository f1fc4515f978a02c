package models

// Report column names, in sheet order.
const (
	ColumnID             = "ID"
	ColumnDisclosureDate = "Data Disponibilização"
	ColumnTribunal       = "Tribunal"
	ColumnType           = "Tipo Comunicação"
	ColumnCourtBody      = "Órgão"
	ColumnProcessNumber  = "Número do Processo"
	ColumnClass          = "Classe"
	ColumnText           = "Texto"
	ColumnChannel        = "Meio"
	ColumnLink           = "Link"
	ColumnStatus         = "Status"
	ColumnRecipients     = "Destinatários"
	ColumnLawyers        = "Advogados"
)

// Columns lists the report header in its fixed order.
var Columns = []string{
	ColumnID,
	ColumnDisclosureDate,
	ColumnTribunal,
	ColumnType,
	ColumnCourtBody,
	ColumnProcessNumber,
	ColumnClass,
	ColumnText,
	ColumnChannel,
	ColumnLink,
	ColumnStatus,
	ColumnRecipients,
	ColumnLawyers,
}

// Record is one normalized notification. Missing source keys yield empty strings.
type Record struct {
	ID             string `json:"id"`
	DisclosureDate string `json:"dataDisponibilizacao"`
	Tribunal       string `json:"tribunal"`
	Type           string `json:"tipoComunicacao"`
	CourtBody      string `json:"orgao"`
	ProcessNumber  string `json:"numeroProcesso"`
	Class          string `json:"classe"`
	Text           string `json:"texto"`
	Channel        string `json:"meio"`
	Link           string `json:"link"`
	Status         string `json:"status"`
	Recipients     string `json:"destinatarios"`
	Lawyers        string `json:"advogados"`
}

// Values returns the record fields in Columns order.
func (r Record) Values() []string {
	return []string{
		r.ID,
		r.DisclosureDate,
		r.Tribunal,
		r.Type,
		r.CourtBody,
		r.ProcessNumber,
		r.Class,
		r.Text,
		r.Channel,
		r.Link,
		r.Status,
		r.Recipients,
		r.Lawyers,
	}
}

// ReportTable is the ordered set of records rendered into a report.
type ReportTable struct {
	Records []Record
}

// Len returns the number of records.
func (t *ReportTable) Len() int {
	if t == nil {
		return 0
	}

	return len(t.Records)
}

// IsEmpty reports whether the table has no records.
func (t *ReportTable) IsEmpty() bool {
	return t.Len() == 0
}

// Append adds a record, preserving insertion order.
func (t *ReportTable) Append(r Record) {
	t.Records = append(t.Records, r)
}

// Rows returns every record as a row of cell strings.
func (t *ReportTable) Rows() [][]string {
	rows := make([][]string, 0, t.Len())
	for _, r := range t.Records {
		rows = append(rows, r.Values())
	}

	return rows
}
