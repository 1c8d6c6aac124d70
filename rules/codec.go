package rules

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type squareJSON struct {
	Row    int `json:"row" validate:"min=1,max=8"`
	Column int `json:"column" validate:"min=1,max=8"`
}

// moveJSON is the wire shape of a Move:
//
//	{"startPosition":{"row":7,"column":5},"endPosition":{"row":8,"column":5},"promotionPiece":"QUEEN"}
type moveJSON struct {
	Start     *squareJSON `json:"startPosition" validate:"required"`
	End       *squareJSON `json:"endPosition" validate:"required"`
	Promotion string      `json:"promotionPiece,omitempty" validate:"omitempty,oneof=KNIGHT BISHOP ROOK QUEEN"`
}

// MarshalJSON encodes the move in the startPosition/endPosition form.
func (m Move) MarshalJSON() ([]byte, error) {
	if !m.From.Valid() || !m.To.Valid() {
		return nil, fmt.Errorf("%w: move %v has a square off the board", ErrInvalidEncoding, m)
	}
	out := moveJSON{
		Start: &squareJSON{Row: m.From.Row, Column: m.From.Col},
		End:   &squareJSON{Row: m.To.Row, Column: m.To.Col},
	}
	if m.Promotion != NoKind {
		if !isPromotionKind(m.Promotion) {
			return nil, fmt.Errorf("%w: %s is not a promotion piece", ErrInvalidEncoding, m.Promotion)
		}
		out.Promotion = strings.ToUpper(m.Promotion.String())
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes and validates the startPosition/endPosition form.
// The move is left untouched on error.
func (m *Move) UnmarshalJSON(data []byte) error {
	var in moveJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	if err := validate.Struct(&in); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidEncoding, describeValidation(err))
	}
	var promo PieceKind
	if in.Promotion != "" {
		promo = kindFromLetter(promotionLetters[in.Promotion])
	}
	*m = NewMove(Sq(in.Start.Row, in.Start.Column), Sq(in.End.Row, in.End.Column), promo)
	return nil
}

var promotionLetters = map[string]byte{
	"KNIGHT": 'n',
	"BISHOP": 'b',
	"ROOK":   'r',
	"QUEEN":  'q',
}

func describeValidation(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	var details strings.Builder
	for _, fe := range verrs {
		if details.Len() > 0 {
			details.WriteString("; ")
		}
		switch fe.Tag() {
		case "required":
			details.WriteString(fmt.Sprintf("%s is required", fe.Namespace()))
		case "oneof":
			details.WriteString(fmt.Sprintf("%s must be one of [%s]", fe.Namespace(), fe.Param()))
		case "min":
			details.WriteString(fmt.Sprintf("%s must be at least %s", fe.Namespace(), fe.Param()))
		case "max":
			details.WriteString(fmt.Sprintf("%s must be at most %s", fe.Namespace(), fe.Param()))
		default:
			details.WriteString(fmt.Sprintf("%s failed %s validation", fe.Namespace(), fe.Tag()))
		}
	}
	return details.String()
}
