package normalizer

import (
	"github.com/tidwall/gjson"

	"consultapje/internal/models"
)

// lookupMode selects how a rule picks among its keys.
type lookupMode int

const (
	// firstPresent takes the first key that exists, even when its value is null or empty.
	firstPresent lookupMode = iota
	// firstNonEmpty skips keys whose value is null or empty.
	firstNonEmpty
)

// fieldRule maps one record field to the raw keys that may carry it, in order of preference.
// When the resolved value is empty and fallback is set, fallback supplies the value.
type fieldRule struct {
	set      func(r *models.Record, value string)
	fallback func(item gjson.Result) string
	keys     []string
	lookup   lookupMode
}

// fieldRules is the resolution table for every scalar record field.
// Recipients and lawyers are composite and resolved separately.
var fieldRules = []fieldRule{
	{keys: []string{"id"}, set: func(r *models.Record, v string) { r.ID = v }},
	{
		keys:   []string{"data_disponibilizacao", "datadisponibilizacao"},
		lookup: firstNonEmpty,
		set:    func(r *models.Record, v string) { r.DisclosureDate = v },
	},
	{keys: []string{"siglaTribunal"}, set: func(r *models.Record, v string) { r.Tribunal = v }},
	{keys: []string{"tipoComunicacao"}, set: func(r *models.Record, v string) { r.Type = v }},
	{keys: []string{"nomeOrgao"}, set: func(r *models.Record, v string) { r.CourtBody = v }},
	{
		keys:     []string{"numeroprocessocommascara", "numero_processo"},
		fallback: formatBareProcessNumber,
		set:      func(r *models.Record, v string) { r.ProcessNumber = v },
	},
	{keys: []string{"nomeClasse"}, set: func(r *models.Record, v string) { r.Class = v }},
	{keys: []string{"texto"}, set: func(r *models.Record, v string) { r.Text = v }},
	{keys: []string{"meiocompleto", "meio"}, set: func(r *models.Record, v string) { r.Channel = v }},
	{keys: []string{"link"}, set: func(r *models.Record, v string) { r.Link = v }},
	{keys: []string{"status"}, set: func(r *models.Record, v string) { r.Status = v }},
}

// value resolves the rule against one raw item.
func (f fieldRule) value(item gjson.Result) string {
	var v string
	if f.lookup == firstNonEmpty {
		v = resolveNonEmpty(item, f.keys...)
	} else {
		v = resolvePresent(item, f.keys...)
	}

	if v == "" && f.fallback != nil {
		return f.fallback(item)
	}

	return v
}

// formatBareProcessNumber masks numero_processo when no usable masked number was sent.
func formatBareProcessNumber(item gjson.Result) string {
	return FormatProcessNumber(item.Get("numero_processo").String())
}

// resolvePresent returns the value of the first key that exists. Null renders as "".
func resolvePresent(item gjson.Result, keys ...string) string {
	for _, key := range keys {
		if v := item.Get(gjson.Escape(key)); v.Exists() {
			return v.String()
		}
	}

	return ""
}

// resolveNonEmpty returns the first key holding a non-null, non-empty value, or "".
func resolveNonEmpty(item gjson.Result, keys ...string) string {
	for _, key := range keys {
		v := item.Get(gjson.Escape(key))
		if !v.Exists() || v.Type == gjson.Null {
			continue
		}

		if s := v.String(); s != "" {
			return s
		}
	}

	return ""
}
