package unit

// SI prefixes as Ratio values. Any zero-size type with a Ratio method works
// the same way:
//
//	type ten struct{}
//	func (ten) Ratio() (int64, int64) { return 10, 1 }
type (
	Atto  struct{}
	Femto struct{}
	Pico  struct{}
	Nano  struct{}
	Micro struct{}
	Milli struct{}
	Centi struct{}
	Deci  struct{}
	Deca  struct{}
	Hecto struct{}
	Kilo  struct{}
	Mega  struct{}
	Giga  struct{}
	Tera  struct{}
	Peta  struct{}
	Exa   struct{}
)

func (Atto) Ratio() (int64, int64) { return 1, 1_000_000_000_000_000_000 }
func (Femto) Ratio() (int64, int64) { return 1, 1_000_000_000_000_000 }
func (Pico) Ratio() (int64, int64) { return 1, 1_000_000_000_000 }
func (Nano) Ratio() (int64, int64) { return 1, 1_000_000_000 }
func (Micro) Ratio() (int64, int64) { return 1, 1_000_000 }
func (Milli) Ratio() (int64, int64) { return 1, 1_000 }
func (Centi) Ratio() (int64, int64) { return 1, 100 }
func (Deci) Ratio() (int64, int64) { return 1, 10 }
func (Deca) Ratio() (int64, int64) { return 10, 1 }
func (Hecto) Ratio() (int64, int64) { return 100, 1 }
func (Kilo) Ratio() (int64, int64) { return 1_000, 1 }
func (Mega) Ratio() (int64, int64) { return 1_000_000, 1 }
func (Giga) Ratio() (int64, int64) { return 1_000_000_000, 1 }
func (Tera) Ratio() (int64, int64) { return 1_000_000_000_000, 1 }
func (Peta) Ratio() (int64, int64) { return 1_000_000_000_000_000, 1 }
func (Exa) Ratio() (int64, int64) { return 1_000_000_000_000_000_000, 1 }

// Common non-decimal ratios.
type (
	Percent struct{}
	Dozen   struct{}
	Third   struct{}
)

func (Percent) Ratio() (int64, int64) { return 1, 100 }
func (Dozen) Ratio() (int64, int64) { return 12, 1 }
func (Third) Ratio() (int64, int64) { return 1, 3 }
