package domain

import (
	"fmt"
	"strings"
)

// Written in place of "<value> <unit>" when a profile has no tare.
const absentTare = "none"

// EncodeProfile flattens p into three newline separated records:
//
//	NetWeight: <value> <unit>
//	TareWeight: <value> <unit> | none
//	GrossWeight: <value> <unit>
func EncodeProfile(p WeightProfile) string {
	tare := TareWeight{}.Label() + ": " + absentTare
	if t, ok := p.Tare(); ok {
		tare = t.String()
	}
	return p.net.String() + "\n" + tare + "\n" + p.gross.String()
}

// DecodeProfile parses the output of EncodeProfile. Net and tare go back through
// the validating constructors; the stored gross must equal the recomputed one.
func DecodeProfile(text string) (WeightProfile, error) {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	if len(lines) != 3 {
		return WeightProfile{}, fmt.Errorf("decode weight profile: expected 3 records, got %d: %w", len(lines), ErrMalformedRecord)
	}

	netValue, err := parseRecord(lines[0], NetWeight{}.Label())
	if err != nil {
		return WeightProfile{}, fmt.Errorf("decode weight profile: %w", err)
	}
	tareValue, err := parseRecord(lines[1], TareWeight{}.Label())
	if err != nil {
		return WeightProfile{}, fmt.Errorf("decode weight profile: %w", err)
	}
	grossValue, err := parseRecord(lines[2], GrossWeight{}.Label())
	if err != nil {
		return WeightProfile{}, fmt.Errorf("decode weight profile: %w", err)
	}

	net, err := parseRecordWeight(netValue)
	if err != nil {
		return WeightProfile{}, fmt.Errorf("decode weight profile: net: %w", err)
	}
	storedGross, err := parseRecordWeight(grossValue)
	if err != nil {
		return WeightProfile{}, fmt.Errorf("decode weight profile: gross: %w", err)
	}

	var p WeightProfile
	if tareValue == absentTare {
		p, err = NewNetOnlyProfile(NewNetWeight(net))
		if err != nil {
			return WeightProfile{}, fmt.Errorf("decode weight profile: %w", err)
		}
	} else {
		tare, err := parseRecordWeight(tareValue)
		if err != nil {
			return WeightProfile{}, fmt.Errorf("decode weight profile: tare: %w", err)
		}
		p, err = NewWeightProfile(NewNetWeight(net), NewTareWeight(tare))
		if err != nil {
			return WeightProfile{}, fmt.Errorf("decode weight profile: %w", err)
		}
	}

	if !p.gross.Weight().Equal(storedGross) {
		return WeightProfile{}, fmt.Errorf(
			"decode weight profile: stored=%s derived=%s: %w",
			storedGross, p.gross.Weight(), ErrGrossMismatch,
		)
	}

	return p, nil
}

// Split "<label>: <rest>" and check the label.
func parseRecord(line, label string) (string, error) {
	gotLabel, rest, ok := strings.Cut(strings.TrimSpace(line), ":")
	if !ok {
		return "", fmt.Errorf("record %q: missing label: %w", line, ErrMalformedRecord)
	}
	if gotLabel != label {
		return "", fmt.Errorf("record %q: want label %s: %w", line, label, ErrMalformedRecord)
	}
	return strings.TrimSpace(rest), nil
}

func parseRecordWeight(s string) (Weight, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return Weight{}, fmt.Errorf("record value %q: want \"<value> <unit>\": %w", s, ErrMalformedRecord)
	}
	unit := Unit(fields[1])
	if !unit.Valid() {
		return Weight{}, fmt.Errorf("record value %q: %w: %w", s, ErrMalformedRecord, ErrUnknownUnit)
	}
	return ParseWeight(fields[0], fields[1])
}
