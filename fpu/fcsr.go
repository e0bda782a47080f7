package fpu

// RoundingMode is the frm field encoding. Only round-to-nearest-even is
// implemented by the arithmetic; the other encodings are stored but inert.
type RoundingMode int

//go:generate go tool stringer -linecomment -type=RoundingMode
const (
	FRM_RNE = RoundingMode(0) // rne
	FRM_RTZ = RoundingMode(1) // rtz
	FRM_RDN = RoundingMode(2) // rdn
	FRM_RUP = RoundingMode(3) // rup
	FRM_RMM = RoundingMode(4) // rmm
)

// FCSR bit layout constants.
const (
	FCSR_FRM_SHIFT = 5
	FCSR_NV_BIT    = 4
	FCSR_DZ_BIT    = 3
	FCSR_OF_BIT    = 2
	FCSR_UF_BIT    = 1
	FCSR_NX_BIT    = 0
)

// FCSR is the floating-point control/status register: a rounding-mode
// selector and five sticky exception flags. One instance per modeled core,
// owned by the caller; the arithmetic operations never construct or clear
// one, they only report flags for accumulation.
type FCSR struct {
	Frm    RoundingMode
	fflags Flags
}

// NewFCSR creates a register with frm=RNE and all flags clear.
func NewFCSR() *FCSR {
	return &FCSR{Frm: FRM_RNE}
}

// SetFrm stores a rounding mode. Any 3-bit encoding is accepted; modes
// other than RNE are inert.
func (csr *FCSR) SetFrm(mode RoundingMode) (err error) {
	if mode < 0 || mode > 7 {
		err = ErrRoundingMode
		return
	}
	csr.Frm = mode
	return
}

// Accumulate ORs a flag set into the sticky flags. Monotonic: a flag only
// ever transitions clear to set.
func (csr *FCSR) Accumulate(flags Flags) {
	csr.fflags = csr.fflags.Or(flags)
}

// Fflags reads the accumulated sticky flags.
func (csr *FCSR) Fflags() Flags {
	return csr.fflags
}

// ClearFflags resets all sticky flags.
func (csr *FCSR) ClearFflags() {
	csr.fflags = Flags{}
}

// PackU8 packs the register into a byte: [7:5]=frm, 4=NV, 3=DZ, 2=OF,
// 1=UF, 0=NX.
func (csr *FCSR) PackU8() (out byte) {
	out = byte(csr.Frm&7) << FCSR_FRM_SHIFT
	for _, field := range []struct {
		set bool
		bit int
	}{
		{csr.fflags.NV, FCSR_NV_BIT},
		{csr.fflags.DZ, FCSR_DZ_BIT},
		{csr.fflags.OF, FCSR_OF_BIT},
		{csr.fflags.UF, FCSR_UF_BIT},
		{csr.fflags.NX, FCSR_NX_BIT},
	} {
		if field.set {
			out |= 1 << field.bit
		}
	}
	return
}

// UnpackU8 is the inverse of PackU8.
func UnpackU8(packed byte) FCSR {
	return FCSR{
		Frm: RoundingMode(packed >> FCSR_FRM_SHIFT),
		fflags: Flags{
			NV: packed&(1<<FCSR_NV_BIT) != 0,
			DZ: packed&(1<<FCSR_DZ_BIT) != 0,
			OF: packed&(1<<FCSR_OF_BIT) != 0,
			UF: packed&(1<<FCSR_UF_BIT) != 0,
			NX: packed&(1<<FCSR_NX_BIT) != 0,
		},
	}
}
