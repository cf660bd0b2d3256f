package solve

import "math/big"

func ratMinusOne() *big.Rat { return big.NewRat(-1, 1) }
