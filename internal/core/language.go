package core

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

// sapLanguageCodes maps ISO 639 language codes onto the one character
// SAP language keys used in dictionary records.
var sapLanguageCodes = map[string]string{
	"AF": "a",
	"AR": "A",
	"BG": "W",
	"CA": "c",
	"CS": "C",
	"DA": "K",
	"DE": "D",
	"EL": "G",
	"EN": "E",
	"ES": "S",
	"ET": "9",
	"FI": "U",
	"FR": "F",
	"HE": "B",
	"HR": "6",
	"HU": "H",
	"ID": "i",
	"IS": "b",
	"IT": "I",
	"JA": "J",
	"KO": "3",
	"LT": "X",
	"LV": "Y",
	"MS": "7",
	"NL": "N",
	"NO": "O",
	"PL": "L",
	"PT": "P",
	"RO": "4",
	"RU": "R",
	"SH": "d",
	"SK": "Q",
	"SL": "5",
	"SR": "0",
	"SV": "V",
	"TH": "2",
	"TR": "T",
	"UK": "8",
	"ZF": "M",
	"ZH": "1",
}

// SAPLanguageCode converts an ISO 639 language code into the one
// character SAP language key. The lookup ignores case and surrounding
// whitespace.
func SAPLanguageCode(iso string) (string, error) {
	code, ok := sapLanguageCodes[strings.ToUpper(strings.TrimSpace(iso))]
	if !ok {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unknown ISO language code: %s", iso))
	}
	return code, nil
}
