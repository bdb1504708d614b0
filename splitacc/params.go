package splitacc

import (
	"bytes"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Params holds the Pedersen generators used to commit to record digests.
// Generators are derived by hashing fixed domain-separation tags to the
// curve, so the commitment key is transparent and identical for every
// process.
type Params struct {
	G, H bn254.G1Affine
}

func defaultParams() *Params {
	g, err := bn254.HashToG1([]byte("generator-g"), []byte("ragu/splitacc/v1"))
	if err != nil {
		panic(err)
	}
	h, err := bn254.HashToG1([]byte("generator-h"), []byte("ragu/splitacc/v1"))
	if err != nil {
		panic(err)
	}
	return &Params{G: g, H: h}
}

// commit computes digest*G + blind*H.
func (pp *Params) commit(digest, blind *fr.Element) bn254.G1Affine {
	var p, q bn254.G1Affine
	p.ScalarMultiplication(&pp.G, digest.BigInt(new(big.Int)))
	q.ScalarMultiplication(&pp.H, blind.BigInt(new(big.Int)))

	var acc, t bn254.G1Jac
	acc.FromAffine(&p)
	t.FromAffine(&q)
	acc.AddAssign(&t)

	var r bn254.G1Affine
	r.FromJacobian(&acc)
	return r
}

// open checks that commitment is the Pedersen commitment of digest under
// blind.
func (pp *Params) open(commitment []byte, digest *fr.Element, blind []byte) bool {
	var b fr.Element
	b.SetBytes(blind)
	want := pp.commit(digest, &b)
	wb := want.Bytes()
	return bytes.Equal(commitment, wb[:])
}

// poison shifts a commitment off its opening so that it can never verify.
// Used when a replay fails at compression or rerandomization time: the
// operation itself must not fail, but the result has to be rejected by
// every later verification.
func (pp *Params) poison(c bn254.G1Affine) bn254.G1Affine {
	var acc, t bn254.G1Jac
	acc.FromAffine(&c)
	t.FromAffine(&pp.G)
	acc.AddAssign(&t)

	var r bn254.G1Affine
	r.FromJacobian(&acc)
	return r
}

func freshBlind() fr.Element {
	var b fr.Element
	if _, err := b.SetRandom(); err != nil {
		panic(err)
	}
	return b
}
