package splitacc

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark/constraint"
	"golang.org/x/crypto/sha3"

	"github.com/alxiong/ragu/accum"
	"github.com/alxiong/ragu/field"
	"github.com/alxiong/ragu/utils"
)

const (
	kindStep uint8 = iota
	kindCheckpoint
)

// record is one accumulated obligation. Step records replay through the
// registered step with the stored witness; checkpoint records stand in for
// a compressed history that fusion resumed from.
type record struct {
	Kind        uint8
	Step        uint32
	LeftSuffix  uint64
	LeftOutput  []constraint.Element
	RightSuffix uint64
	RightOutput []constraint.Element
	OutSuffix   uint64
	Output      []constraint.Element
	Witness     []byte

	// History is set on checkpoint records only: the chained digest of the
	// compressed history the checkpoint attests to.
	History []byte

	// Blind and Commitment bind the record transcript under the Pedersen
	// key. They are the only parts of an accumulator that rerandomization
	// replaces.
	Blind      []byte
	Commitment []byte
}

func (rec *record) clone() record {
	nr := *rec
	nr.LeftOutput = append([]constraint.Element(nil), rec.LeftOutput...)
	nr.RightOutput = append([]constraint.Element(nil), rec.RightOutput...)
	nr.Output = append([]constraint.Element(nil), rec.Output...)
	nr.Witness = append([]byte(nil), rec.Witness...)
	nr.History = append([]byte(nil), rec.History...)
	nr.Blind = append([]byte(nil), rec.Blind...)
	nr.Commitment = append([]byte(nil), rec.Commitment...)
	return nr
}

// accumulator is the uncompressed, linear-size representation.
type accumulator struct {
	Records []record
}

func (a *accumulator) Mode() accum.Mode { return accum.Uncompressed }

// attestation is the compressed, constant-size representation: the chained
// history digest, the final claim it reduces to, and a Pedersen binding of
// both.
type attestation struct {
	History    []byte
	Suffix     uint64
	Output     []constraint.Element
	Blind      []byte
	Commitment []byte
}

func (a *attestation) Mode() accum.Mode { return accum.Compressed }

func appendElements(buf *utils.OutputBuf, f field.Field, elems []constraint.Element) {
	buf.AppendUint64(uint64(len(elems)))
	for _, e := range elems {
		buf.AppendBigInt(f.ToBigInt(e))
	}
}

// body serializes everything the commitment must bind: all record content
// except the blinding data itself.
func (rec *record) body(f field.Field) []byte {
	var buf utils.OutputBuf
	buf.AppendUint64(uint64(rec.Kind))
	buf.AppendUint64(uint64(rec.Step))
	buf.AppendUint64(rec.LeftSuffix)
	appendElements(&buf, f, rec.LeftOutput)
	buf.AppendUint64(rec.RightSuffix)
	appendElements(&buf, f, rec.RightOutput)
	buf.AppendUint64(rec.OutSuffix)
	appendElements(&buf, f, rec.Output)
	buf.AppendBytes(rec.Witness)
	buf.AppendBytes(rec.History)
	return buf.Bytes()
}

func shake(label string, parts ...[]byte) []byte {
	h := sha3.NewShake256()
	h.Write([]byte(label))
	for _, p := range parts {
		h.Write(p)
	}
	out := make([]byte, 32)
	h.Read(out)
	return out
}

func digestToScalar(d []byte) fr.Element {
	var e fr.Element
	e.SetBytes(d)
	return e
}

// recordScalar is the scalar committed to for one record. Step records
// commit to their transcript digest; checkpoint records commit to the
// attestation digest of the history they carry.
func (s *Scheme) recordScalar(rec *record) fr.Element {
	if rec.Kind == kindCheckpoint {
		return s.attestScalar(rec.History, rec.OutSuffix, rec.Output)
	}
	return digestToScalar(shake("ragu/splitacc/record", rec.body(s.f)))
}

// attestScalar binds a history digest to the claim it reduces to.
func (s *Scheme) attestScalar(history []byte, suffix uint64, output []constraint.Element) fr.Element {
	var buf utils.OutputBuf
	buf.AppendBytes(history)
	buf.AppendUint64(suffix)
	appendElements(&buf, s.f, output)
	return digestToScalar(shake("ragu/splitacc/attest", buf.Bytes()))
}

// historyDigest chains the transcript bodies of all records.
func (s *Scheme) historyDigest(records []record) []byte {
	d := shake("ragu/splitacc/history")
	for i := range records {
		d = shake("ragu/splitacc/history", d, records[i].body(s.f))
	}
	return d
}

// claimKey identifies a certified (suffix, output) pair during replay.
func (s *Scheme) claimKey(suffix uint64, output []constraint.Element) string {
	var buf utils.OutputBuf
	buf.AppendUint64(suffix)
	appendElements(&buf, s.f, output)
	return string(buf.Bytes())
}
