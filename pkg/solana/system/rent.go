package system

import (
	"bytes"
	"encoding/binary"
	"math"

	"github.com/pkg/errors"

	"github.com/code-escrow/escrow-program/pkg/solana"
)

// RentAccountSize is the serialized size of the rent sysvar account:
// lamports per byte-year (u64), exemption threshold (f64), burn percent (u8).
//
// Reference: https://github.com/solana-labs/solana/blob/f02a78d8fff2dd7297dc6ce6eb5a68a3002f5359/sdk/program/src/rent.rs
const RentAccountSize = 17

// accountStorageOverhead is the per-account overhead, in bytes, the runtime
// charges rent for on top of the account's own data.
const accountStorageOverhead = 128

var ErrInvalidSysVar = errors.New("invalid sysvar account")

// Rent holds the cluster rent configuration, as published through the rent
// sysvar account.
type Rent struct {
	// LamportsPerByteYear is the rental rate in lamports per byte-year.
	LamportsPerByteYear uint64
	// ExemptionThreshold is the amount of time (in years) a balance must
	// cover rent for to be exempt from collection.
	ExemptionThreshold float64
	// BurnPercent is the percentage of collected rent that is burned.
	BurnPercent uint8
}

// DefaultRent mirrors the cluster default rent configuration.
var DefaultRent = Rent{
	LamportsPerByteYear: 3480,
	ExemptionThreshold:  2.0,
	BurnPercent:         50,
}

// MinimumBalance returns the minimum balance for an account of the given
// data length to be exempt from rent collection.
func (r Rent) MinimumBalance(dataLen int) uint64 {
	size := uint64(dataLen) + accountStorageOverhead
	return uint64(float64(size*r.LamportsPerByteYear) * r.ExemptionThreshold)
}

// IsExempt returns whether the given balance is sufficient for an account
// of the given data length to be exempt from rent collection.
func (r Rent) IsExempt(lamports uint64, dataLen int) bool {
	return lamports >= r.MinimumBalance(dataLen)
}

func (r Rent) Marshal() []byte {
	b := make([]byte, RentAccountSize)
	binary.LittleEndian.PutUint64(b, r.LamportsPerByteYear)
	binary.LittleEndian.PutUint64(b[8:], math.Float64bits(r.ExemptionThreshold))
	b[16] = r.BurnPercent
	return b
}

func (r *Rent) Unmarshal(b []byte) bool {
	if len(b) != RentAccountSize {
		return false
	}

	r.LamportsPerByteYear = binary.LittleEndian.Uint64(b)
	r.ExemptionThreshold = math.Float64frombits(binary.LittleEndian.Uint64(b[8:]))
	r.BurnPercent = b[16]
	return true
}

// RentFromAccount loads the rent configuration from the supplied sysvar
// account, verifying the account actually is the rent sysvar.
func RentFromAccount(info *solana.AccountInfo) (rent Rent, err error) {
	if !bytes.Equal(info.Key, RentSysVar) {
		return rent, errors.Wrap(ErrInvalidSysVar, "not the rent sysvar")
	}
	if !rent.Unmarshal(info.Data) {
		return rent, errors.Wrap(ErrInvalidSysVar, "malformed rent data")
	}

	return rent, nil
}
