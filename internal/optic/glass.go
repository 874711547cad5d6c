package optic

// Glass is a catalog material with d-line index and Abbe number.
type Glass struct {
	Name string
	Nd   float64
	Vd   float64
}

// Catalog is the fixed set of Schott N-glasses available to update operations.
// Order matters: action decoding maps the material selector onto this slice.
var Catalog = []Glass{
	{"N-BALF5", 1.54739, 53.63},
	{"N-PK52A", 1.49700, 81.61},
	{"N-SSK2", 1.62229, 53.27},
	{"N-LAF3", 1.71700, 47.96},
	{"N-SK15", 1.62296, 57.96},
	{"N-ZK7", 1.50847, 61.19},
	{"N-LAF34", 1.77250, 49.62},
	{"N-LAF2", 1.74397, 44.85},
	{"N-FK5", 1.48749, 70.41},
	{"N-SF6", 1.80518, 25.36},
	{"N-BALF4", 1.57956, 53.87},
	{"N-SSK5", 1.65844, 50.88},
	{"N-BAK4", 1.56883, 55.98},
	{"N-BAK2", 1.53996, 59.71},
	{"N-SF14", 1.76182, 26.53},
	{"N-LAK9", 1.69100, 54.71},
	{"N-FK58", 1.45600, 90.90},
	{"N-SK2HT", 1.60738, 56.65},
	{"N-SF6HT", 1.80518, 25.36},
	{"N-BAF10", 1.67003, 47.11},
	{"N-PSK3", 1.55232, 63.46},
	{"N-F2", 1.62005, 36.43},
	{"N-KZFS11", 1.63775, 42.41},
	{"N-LASF45", 1.80107, 34.97},
	{"N-LASF40", 1.83404, 37.30},
	{"N-SF56", 1.78470, 26.10},
	{"N-PK51", 1.52855, 76.98},
	{"N-LASF46B", 1.90366, 31.32},
	{"N-K5", 1.52249, 59.48},
	{"N-LAK21", 1.64049, 60.10},
	{"N-SF57", 1.84666, 23.78},
	{"N-KF9", 1.52346, 51.54},
	{"N-SK2", 1.60738, 56.65},
	{"N-LAK33B", 1.75500, 52.30},
	{"N-SF8", 1.68894, 31.31},
	{"N-LASF31A", 1.88300, 40.76},
	{"N-BAF4", 1.60568, 43.72},
	{"N-KZFS4HT", 1.61336, 44.49},
	{"N-SF1", 1.71736, 29.62},
	{"N-LAF7", 1.74950, 34.82},
	{"N-BAK1", 1.57250, 57.55},
	{"N-LAK22", 1.65113, 55.89},
	{"N-SF15", 1.69892, 30.20},
	{"N-BAF51", 1.65224, 44.96},
	{"N-LAF33", 1.78582, 44.05},
	{"N-SF66", 1.92286, 20.88},
	{"N-SK11", 1.56384, 60.80},
	{"N-SF6HTultra", 1.80518, 25.36},
	{"N-SF64", 1.70591, 30.30},
	{"N-SF57HTultra", 1.84666, 23.78},
	{"N-LASF43", 1.80610, 40.61},
	{"N-SF11", 1.78472, 25.68},
	{"N-BK7HTi", 1.51680, 64.17},
	{"N-BASF64", 1.70400, 39.38},
	{"N-FK51A", 1.48656, 84.47},
	{"N-LAF35", 1.74330, 49.40},
	{"N-SF10", 1.72828, 28.53},
	{"N-BK7HT", 1.51680, 64.17},
	{"N-SK16", 1.62041, 60.32},
	{"N-LAF21", 1.78800, 47.49},
	{"N-SF4", 1.75513, 27.38},
	{"N-LASF45HT", 1.80107, 34.97},
	{"N-KZFS2", 1.55836, 54.01},
	{"N-LAK8", 1.71300, 53.83},
	{"N-LAF36", 1.79952, 42.22},
	{"N-SK14", 1.60311, 60.60},
	{"N-KZFS5", 1.65412, 39.70},
	{"N-LAK10", 1.72003, 50.62},
	{"N-SK4", 1.61272, 58.63},
	{"N-BK7", 1.51680, 64.17},
	{"N-BASF2", 1.66446, 36.03},
	{"N-ZK7A", 1.50805, 61.04},
	{"N-SK5", 1.58913, 61.27},
	{"N-SF19", 1.66680, 31.90},
	{"N-PSK53A", 1.61800, 63.39},
	{"N-LASF44", 1.80420, 46.50},
	{"N-PSK53", 1.62014, 63.48},
	{"N-LASF41", 1.83501, 43.13},
	{"N-LASF9", 1.85025, 32.17},
	{"N-SK10", 1.62278, 56.90},
	{"N-SSK8", 1.61773, 49.83},
	{"N-BAK4HT", 1.56883, 55.98},
	{"N-FK51", 1.48656, 84.47},
	{"N-LAK7", 1.65160, 58.52},
	{"N-LAK34", 1.72916, 54.50},
	{"N-KZFS8", 1.72047, 34.70},
	{"N-LAF32", 1.78443, 45.87},
	{"N-SF2", 1.64769, 33.82},
	{"N-LASF46A", 1.90366, 31.32},
	{"N-SF5", 1.67271, 32.25},
	{"N-LASF46", 1.90366, 31.32},
	{"N-LAK12", 1.67790, 55.20},
	{"N-KZFS4", 1.61336, 44.49},
	{"N-BAF52", 1.60863, 46.60},
	{"N-BAF3", 1.58272, 46.53},
	{"N-SF57HT", 1.84666, 23.78},
	{"N-LASF9HT", 1.85025, 32.17},
	{"N-LASF31", 1.88067, 41.01},
	{"N-LAK33A", 1.75393, 52.27},
	{"N-LAK14", 1.69680, 55.41},
	{"N-BK10", 1.49782, 66.95},
}

// GlassByName returns the catalog entry for name.
func GlassByName(name string) (*Glass, bool) {
	for i := range Catalog {
		if Catalog[i].Name == name {
			return &Catalog[i], true
		}
	}
	return nil, false
}
