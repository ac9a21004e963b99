package classify

import "lookback/internal/model"

// DefaultKeywordOrder is the category evaluation order for the merchant
// table. First containing match wins, so narrower categories come before
// broad ones like Shopping.
func DefaultKeywordOrder() []model.Category {
	return []model.Category{
		model.CategoryFoodDining,
		model.CategoryEntertainment,
		model.CategoryGasTravel,
		model.CategoryHealthcare,
		model.CategoryGolf,
		model.CategorySubscriptions,
		model.CategoryShopping,
		model.CategoryTransportation,
		model.CategoryInsurance,
		model.CategoryHousing,
		model.CategoryTourism,
	}
}

// DefaultKeywordTable returns the built-in merchant keyword table. These are
// seed data for one user's merchant vocabulary; config-file entries merge
// over them.
func DefaultKeywordTable() *KeywordTable {
	return NewKeywordTable(DefaultKeywordOrder(), map[model.Category][]string{
		model.CategoryFoodDining: {
			"CHIPOTLE", "MCDONALD", "STARBUCKS", "WAFFLE HOUSE", "WHATABURGER",
			"ZAXBY", "MARCOS PIZZA", "JETS PIZZA", "TROPICAL SMOOTHIE", "DELI",
			"JAX BEACH BRUNCH", "RESTAURANT", "QUE ONDA", "HABERDISH", "SAKE HOUSE",
			"CREPE", "WINN-DIXIE", "JUICE TAP", "AKELS DELI", "ANDREW`S DELI",
			"PENMAN HOSPITALITY", "GEMMA FISH OYSTER", "WORKMAN'S FRIEND",
			"FRENCHY'S SIP", "SPO*LACOCINAMEXICANARESTA",
		},
		model.CategoryEntertainment: {
			"NETFLIX", "SPOTIFY", "YOUTUBE", "STEAM", "ROKU", "MAX.COM", "DECCA LIVE",
			"HOPTINGER", "SURFER THE BAR", "BRIX TAPHOUSE", "STEAMGAMES.COM",
		},
		model.CategoryGasTravel: {
			"LOVE'S", "7-ELEVEN", "AMERICAN AIRLINES", "XPRESS SHOP",
		},
		model.CategoryHealthcare: {
			"DENTAL", "MEDICAL", "CRUNCH FITNESS", "WEST BEACHES DENTAL",
		},
		model.CategoryGolf: {
			"GOLF", "MUNICIPAL", "WHITEWATER", "HULAWEENTIX", "CAROLINA LAKES GOL",
			"ST AUGUSTINE SHORES GC", "JCKSNVL BCH MUNICPL GL", "JACKSONVILLE BEACH GOLF",
			"BLUE SKY GOLF CLUB", "MARSH LANDING COUNTRY CLU",
		},
		model.CategorySubscriptions: {
			"APPLE.COM", "GOOGLE", "MICROSOFT", "COMCAST", "OBSIDIAN", "KINDLE SVCS",
			"HELP.MAX.COM", "CLKBANK*VINCHECKUP", "THE ROKU CHANNEL",
		},
		model.CategoryShopping: {
			"AMAZON", "WALGREENS", "SUNRISE SURF", "ARGYLE", "SP FREAK ATHLETE",
			"SP TITAN FITNESS", "NNT MENS WEARHOUSE",
		},
		model.CategoryTransportation: {
			"CDOT PAY BY CELL",
		},
		model.CategoryInsurance: {
			"STATE FARM", "CAPITAL ONE", "APPLE CASH SENT MONEY",
		},
		model.CategoryHousing: {
			"YSI*PROGRESS RESIDENTIAL", "PROGRESS RESIDENTIAL",
		},
		model.CategoryTourism: {
			"VIATORTRIPADVISOR", "AIRBNB", "FGT*HULAWEENTIX",
		},
	})
}
