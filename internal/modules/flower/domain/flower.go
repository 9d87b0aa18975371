package domain

import "time"

type Flower struct {
	Name string
	Art  string
}

// Thresholds are the upper bounds of each growth tier. Sessions between Bloom
// and Queen draw from Garden; anything at or above Queen earns Queen.
type Thresholds struct {
	Seedling time.Duration
	Bud      time.Duration
	Bloom    time.Duration
	Queen    time.Duration
}

var (
	Seedling = Flower{Name: "Seedling", Art: "_\n(_)\n |"}
	Bud      = Flower{Name: "Bud", Art: "(@)\n |"}
	Bloom    = Flower{Name: "Bloom", Art: " .-.\n( + )\n |*|"}
	Queen    = Flower{Name: "Queen of the Night", Art: `     .***.
   .*******.
  ***********
 *************
***************
 *************
  ***********
   *******.
     .***.
       |
       |
 ═══════════════
 Queen of the Night
 ═══════════════`}

	// Garden holds the flowers picked at random for sessions between the rare and queen tiers.
	Garden = []Flower{
		{Name: "Small Lotus", Art: "   .-.\n  ( * )\n   '-'\n    |"},
		{Name: "Lotus", Art: "  .--.\n ( ** )\n( **** )\n '--'\n   ||"},
		{Name: "Large Lotus", Art: "   .---.\n  ( *** )\n ( ***** )\n( ******* )\n  '---'\n    |||"},
		{Name: "Chrysanthemum", Art: "   ___\n  (o*o)\n (*o*o*)\n  (o*o)\n   |||"},
		{Name: "Plum Blossom", Art: "  .*.\n *.*.*\n*.*.*.*\n *.*.*\n  .*.\n   |"},
		{Name: "Cherry Blossom", Art: "   oOo\n  oOOOo\n oOOOOOo\n  oOOOo\n   oOo\n    |"},
		{Name: "Orchid", Art: `  \ | /
 - *** -
  / | \
    |`},
		{Name: "Peony", Art: "  (@@@)\n (@@@@@)\n(@@@@@@@)\n (@@@@@)\n  (@@@)\n    |"},
		{Name: "Bamboo Flower", Art: "   |||\n  |*|*|\n |*|*|*|\n  |*|*|\n   |||\n    |"},
		{Name: "Full Bloom", Art: `        #%:.
 #%=   ###%=:
##%=   |##%=:
##%=   ###%=:
 #%%=  |##%=:
 ##%== ###%=:    ===
  ##%%=!##%=:    ====
   ###%%##%=   :====
    ######%=: .:====
      ####%%=======
       ###%%%===:
       |%#%%=:=:
       ####%=:
       |##%%:
-------####%:---=
       |%#%%:`},
	}
)

// Assign picks the flower earned by a net working duration. pick chooses an
// index in [0, n) for the random tier.
func Assign(net time.Duration, th Thresholds, pick func(n int) int) Flower {
	switch {
	case net < th.Seedling:
		return Seedling
	case net < th.Bud:
		return Bud
	case net < th.Bloom:
		return Bloom
	case net < th.Queen:
		return Garden[pick(len(Garden))]
	default:
		return Queen
	}
}
