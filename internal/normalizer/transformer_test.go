package normalizer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"consultapje/internal/models"
)

const fullItem = `{
	"id": 123456,
	"data_disponibilizacao": "2024-03-15",
	"siglaTribunal": "TJPR",
	"tipoComunicacao": "Intimação",
	"nomeOrgao": "1ª Vara Cível de Curitiba",
	"numero_processo": "00012345620238160001",
	"numeroprocessocommascara": "0001234-56.2023.8.16.0001",
	"nomeClasse": "PROCEDIMENTO COMUM CÍVEL",
	"texto": "Fica a parte intimada.",
	"meio": "D",
	"meiocompleto": "Diário de Justiça Eletrônico Nacional",
	"link": "https://pje.tjpr.jus.br/x",
	"status": "P",
	"destinatarios": [{"nome": "MARIA DA SILVA"}, {"nome": "JOÃO SOUZA"}],
	"destinatarioadvogados": [
		{"advogado": {"nome": "ANA ADVOGADA", "numero_oab": "46470", "uf_oab": "PR"}},
		{"advogado": null},
		{"outro": 1},
		{"advogado": {"nome": "SEM OAB"}}
	]
}`

func TestTransformer_Transform_FullItem(t *testing.T) {
	got := NewTransformer().Transform(models.RawItem(fullItem))

	assert.Equal(t, models.Record{
		ID:             "123456",
		DisclosureDate: "2024-03-15",
		Tribunal:       "TJPR",
		Type:           "Intimação",
		CourtBody:      "1ª Vara Cível de Curitiba",
		ProcessNumber:  "0001234-56.2023.8.16.0001",
		Class:          "PROCEDIMENTO COMUM CÍVEL",
		Text:           "Fica a parte intimada.",
		Channel:        "Diário de Justiça Eletrônico Nacional",
		Link:           "https://pje.tjpr.jus.br/x",
		Status:         "P",
		Recipients:     "MARIA DA SILVA, JOÃO SOUZA",
		Lawyers:        "ANA ADVOGADA (OAB 46470/PR), SEM OAB (OAB /)",
	}, got)
}

func TestTransformer_Transform_EmptyItem(t *testing.T) {
	got := NewTransformer().Transform(models.RawItem(`{}`))

	assert.Equal(t, models.Record{}, got)
	assert.Equal(t, "", got.Recipients)
	assert.Equal(t, "", got.Lawyers)
}

func TestTransformer_Transform_NotAnObject(t *testing.T) {
	tr := NewTransformer()

	for _, raw := range []string{`null`, `42`, `"texto"`, ``} {
		assert.Equal(t, models.Record{}, tr.Transform(models.RawItem(raw)), raw)
	}
}

func TestTransformer_Transform_AlternateKeys(t *testing.T) {
	tr := NewTransformer()

	got := tr.Transform(models.RawItem(`{"datadisponibilizacao":"2024-03-14","meio":"E","numero_processo":"12345670120234010001"}`))
	assert.Equal(t, "2024-03-14", got.DisclosureDate)
	assert.Equal(t, "E", got.Channel)
	assert.Equal(t, "12345670120234010001", got.ProcessNumber)
}

func TestTransformer_Transform_ProcessNumberKeys(t *testing.T) {
	tests := []struct {
		name string
		item string
		want string
	}{
		{"bare number kept as sent", `{"numero_processo":"00012345620238160001"}`, "00012345620238160001"},
		{"masked number", `{"numeroprocessocommascara":"0001234-56.2023.8.16.0001"}`, "0001234-56.2023.8.16.0001"},
		{"masked wins over bare", `{"numero_processo":"99999999999999999999","numeroprocessocommascara":"1234567-01.2023.4.01.0001"}`, "1234567-01.2023.4.01.0001"},
		{"empty masked formats bare", `{"numeroprocessocommascara":"","numero_processo":"00012345620238160001"}`, "0001234-56.2023.8.16.0001"},
		{"null masked formats bare", `{"numeroprocessocommascara":null,"numero_processo":"00012345620238160001"}`, "0001234-56.2023.8.16.0001"},
		{"null masked with short bare", `{"numeroprocessocommascara":null,"numero_processo":"123"}`, "123"},
		{"neither key", `{"id":1}`, ""},
	}

	tr := NewTransformer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tr.Transform(models.RawItem(tt.item)).ProcessNumber)
		})
	}
}

func TestTransformer_Transform_DisclosureDateSkipsEmpty(t *testing.T) {
	tr := NewTransformer()

	assert.Equal(t, "2024-01-02", tr.Transform(models.RawItem(`{"data_disponibilizacao":null,"datadisponibilizacao":"2024-01-02"}`)).DisclosureDate)
	assert.Equal(t, "2024-01-02", tr.Transform(models.RawItem(`{"data_disponibilizacao":"","datadisponibilizacao":"2024-01-02"}`)).DisclosureDate)
}

func TestTransformer_Transform_ChannelTakesFirstPresentKey(t *testing.T) {
	tr := NewTransformer()

	assert.Equal(t, "", tr.Transform(models.RawItem(`{"meiocompleto":null,"meio":"D"}`)).Channel)
	assert.Equal(t, "", tr.Transform(models.RawItem(`{"meiocompleto":"","meio":"D"}`)).Channel)
	assert.Equal(t, "D", tr.Transform(models.RawItem(`{"meio":"D"}`)).Channel)
}

func TestTransformer_Transform_RecipientWithoutName(t *testing.T) {
	got := NewTransformer().Transform(models.RawItem(`{"destinatarios":[{"nome":"A"},{"polo":"P"},{"nome":"B"}]}`))

	assert.Equal(t, "A, , B", got.Recipients)
}
