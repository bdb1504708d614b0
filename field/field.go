// Package field defines the arithmetic engine shared by headers, steps and
// the accumulation scheme.
package field

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark/constraint"

	"github.com/alxiong/ragu/field/bn254"
)

// Field extends gnark's constraint.Field with the order of the field it
// implements. A single Field instance is chosen when an application is
// finalized and shared, read-only, by all concurrent operations.
type Field interface {
	constraint.Field
	Field() *big.Int
	FieldBitLen() int
}

func GetFieldFromOrder(x *big.Int) Field {
	if x.Cmp(bn254.ScalarField) == 0 {
		return &bn254.Field{}
	}
	panic(fmt.Sprintf("unknown field %v", x))
}
