package main

import "github.com/dreamtides/dtengine/catalog"

// sampleCards is a small built-in card pool used by simulate and
// search-bench when no deck list is supplied. The spreadsheet-to-TOML
// content pipeline that would normally produce a full card pool is out of
// scope; this gives the CLI something real to run against without it.
func sampleCards() []catalog.RawCard {
	return []catalog.RawCard{
		{Identity: "scout", Name: "Scout", Cost: 0, Spark: 1, IsCharacter: true},
		{Identity: "raider", Name: "Raider", Cost: 1, Spark: 2, IsCharacter: true},
		{Identity: "sentinel", Name: "Sentinel", Cost: 2, Spark: 3, IsCharacter: true},
		{
			Identity:   "immolate",
			Name:       "Immolate",
			Cost:       2,
			IsFast:     true,
			OracleText: "dissolve an enemy character.",
		},
		{
			Identity:   "rippleofdefiance",
			Name:       "Ripple of Defiance",
			Cost:       1,
			IsFast:     true,
			OracleText: "negate an enemy card on the stack unless its controller pays $2.",
		},
		{
			Identity:   "pointblast",
			Name:       "Point Blast",
			Cost:       3,
			OracleText: "gain 10 points.",
		},
	}
}
