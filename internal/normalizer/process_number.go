package normalizer

import (
	"strings"

	"consultapje/pkg/utils"
)

// processNumberDigits is the length of an unmasked judicial process number.
const processNumberDigits = 20

var stringHelper = utils.NewStringHelper()

// FormatProcessNumber applies the mask NNNNNNN-DD.YYYY.J.TR.OOOO to a bare
// 20 digit process number. Anything already masked, of another length or
// containing non-digits is returned unchanged.
func FormatProcessNumber(raw string) string {
	if strings.ContainsAny(raw, "-.") {
		return raw
	}

	if len(raw) != processNumberDigits || !stringHelper.IsDigits(raw) {
		return raw
	}

	return raw[:7] + "-" + raw[7:9] + "." + raw[9:13] + "." + raw[13:14] + "." + raw[14:16] + "." + raw[16:]
}
