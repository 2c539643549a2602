package game

// Points returns the score delta for consuming a food of the given kind.
func (c Config) Points(kind FoodKind) int {
	if kind == FoodSpecial {
		return c.SpecialPoints
	}
	return c.RegularPoints
}
