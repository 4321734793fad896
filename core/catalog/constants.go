// Package catalog - Physical constants
package catalog

var constants = []Definition{
	// Measured
	{Symbol: "Rc", Description: "Gas constant", Expr: "8.3144598 * J / (mol * K)"},
	{Symbol: "c", Description: "Speed of light", Expr: "299792458 * m / s"},
	{Symbol: "g", Description: "Acceleration of gravity", Expr: "9.80665 * m / pow(s, 2)"},
	{Symbol: "Gc", Description: "Gravitational constant", Expr: "6.67408e-11 * N * pow(m, 2) / pow(kg, 2)"},
	{Symbol: "h", Description: "Planck's constant", Expr: "6.626070040e-34 * J * s"},
	{Symbol: "Me", Description: "Electron rest mass", Expr: "9.10938356e-31 * kg"},
	{Symbol: "Mn", Description: "Neutron rest mass", Expr: "1.674927471e-27 * kg"},
	{Symbol: "Mp", Description: "Proton rest mass", Expr: "1.672621777e-27 * kg"},
	{Symbol: "Na", Description: "Avogadro constant", Expr: "6.022140857e23 / mol"},
	{Symbol: "q", Description: "Electron charge", Expr: "1.6021766208e-19 * C"},

	// Defined
	{Symbol: "Cc", Description: "Coulomb's constant", Expr: "to(pow(c, 2) * 1e-7 * H / m, m / F)"},
	{Symbol: "hbar", Description: "Reduced Planck's constant", Expr: "h / (2 * pi)"},
	{Symbol: "u0", Description: "Vacuum permeability", Expr: "4 * pi * 1e-7 * N / pow(A, 2)"},
	{Symbol: "e0", Description: "Vacuum permittivity", Expr: "to(1 / (u0 * pow(c, 2)), F / m)"},
	{Symbol: "kb", Description: "Boltzmann's constant", Expr: "Rc / Na"},
	{Symbol: "sbc", Description: "Stefan-Boltzmann constant", Expr: "pow(pi, 2) * pow(kb, 4) / (60 * pow(hbar, 3) * pow(c, 2))"},
	{Symbol: "ub", Description: "Bohr magneton", Expr: "to(q * hbar / (2 * Me), J / T)"},
	{Symbol: "Rb", Description: "Bohr radius", Expr: "to(4 * pi * e0 * pow(hbar, 2) / (Me * pow(q, 2)), m)"},
	{Symbol: "Rdb", Description: "Rydberg constant", Expr: "to(Me * pow(q, 4) / (8 * pow(e0, 2) * pow(h, 3) * c), 1 / m)"},
	{Symbol: "mfq", Description: "Magnetic flux quantum", Expr: "to(h / (2 * q), Wb)"},

	// Black body radiation: Eb = omega * T**4
	{Symbol: "omega", Description: "Black body radiation constant", Expr: "2 / 15 * pow(pi, 5) * pow(kb, 4) / (pow(c, 2) * pow(h, 3))"},
}
