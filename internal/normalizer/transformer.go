package normalizer

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"consultapje/internal/models"
)

const listSeparator = ", "

// Transformer converts raw items into report records.
type Transformer struct{}

// NewTransformer creates a new transformer instance.
func NewTransformer() *Transformer {
	return &Transformer{}
}

// Transform maps one raw item to a record. Missing keys yield empty fields; it never fails.
func (t *Transformer) Transform(item models.RawItem) models.Record {
	parsed := gjson.ParseBytes(item)

	var record models.Record
	for _, rule := range fieldRules {
		rule.set(&record, rule.value(parsed))
	}

	record.Recipients = t.recipients(parsed)
	record.Lawyers = t.lawyers(parsed)

	return record
}

// recipients joins the name of every entry in destinatarios.
func (t *Transformer) recipients(item gjson.Result) string {
	var names []string

	item.Get("destinatarios").ForEach(func(_, d gjson.Result) bool {
		names = append(names, d.Get("nome").String())

		return true
	})

	return strings.Join(names, listSeparator)
}

// lawyers formats every destinatarioadvogados entry that carries an advogado object.
func (t *Transformer) lawyers(item gjson.Result) string {
	var lawyers []string

	item.Get("destinatarioadvogados").ForEach(func(_, d gjson.Result) bool {
		adv := d.Get("advogado")
		if !adv.IsObject() || len(adv.Map()) == 0 {
			return true
		}

		lawyers = append(lawyers, fmt.Sprintf("%s (OAB %s/%s)",
			adv.Get("nome").String(),
			adv.Get("numero_oab").String(),
			adv.Get("uf_oab").String(),
		))

		return true
	})

	return strings.Join(lawyers, listSeparator)
}
