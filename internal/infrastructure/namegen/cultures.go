package namegen

// builtinCultures are the shipped name tables. Labels drive the comparison
// order of the assembled name: parts compare in ascending label order, so
// "epithet" names sort by epithet even though the given name displays first.
var builtinCultures = map[string]culture{
	"fantasy": {
		nationality: "Fantasy",
		masculine: partList{
			label: "given",
			native: []string{
				"Aldric", "Baelor", "Cedran", "Doran", "Elandor", "Fenwick",
				"Garrick", "Haldor", "Ithran", "Joruk", "Kaelen", "Lorath",
				"Merrick", "Nyle", "Orin", "Perrin", "Quillon", "Roderic",
				"Soren", "Tavish", "Ulric", "Varek", "Wendel", "Yorath",
			},
		},
		feminine: partList{
			label: "given",
			native: []string{
				"Aerin", "Brienna", "Celia", "Delwen", "Elara", "Fiora",
				"Gwyneth", "Halia", "Isolde", "Jessamine", "Kaelira", "Lunara",
				"Maris", "Nerissa", "Ondine", "Phaedra", "Quenna", "Rosalind",
				"Sylvara", "Thessaly", "Una", "Vespera", "Wrenna", "Ysolde",
			},
		},
		rest: []partList{
			{
				label: "epithet",
				native: []string{
					"Ashveil", "Briarhold", "Cinderfall", "Dawnwhisper",
					"Emberlyn", "Frostmere", "Gloamwood", "Hollowbrook",
					"Ironvale", "Mistrun", "Nightbloom", "Oakenshield",
					"Ravenmoor", "Silverbough", "Thornfield", "Windgrave",
				},
			},
		},
	},
	"northern": {
		nationality: "Northern",
		masculine: partList{
			label: "forename",
			native: []string{
				"Arnvid", "Bjorn", "Eirik", "Gunnar", "Halvard", "Ivar",
				"Ketil", "Leif", "Orm", "Ragnvald", "Sigurd", "Torvald",
			},
		},
		feminine: partList{
			label: "forename",
			native: []string{
				"Astrid", "Bodil", "Dagny", "Gudrun", "Helga", "Ingrid",
				"Ragnhild", "Sigrid", "Solveig", "Thora", "Unn", "Yrsa",
			},
		},
		rest: []partList{
			{
				label: "patronymic",
				native: []string{
					"Arnvidsen", "Bjornsen", "Eiriksen", "Gunnarsen",
					"Halvardsen", "Ivarsen", "Ketilsen", "Leifsen",
					"Ormsen", "Sigurdsen", "Torvaldsen",
				},
			},
		},
	},
	// The ancient script carries diacritics, so romanized forms are
	// provided for every slot and the assembler prefers them. The clan
	// name leads in display order.
	"ancient": {
		nationality: "Ancient",
		givenLast:   true,
		masculine: partList{
			label:  "given",
			native: []string{"Ðrakmar", "Hrœthgar", "Kælvin", "Mœrdun", "Sigvaldr", "Þorvin", "Ulfgæst", "Vægmund"},
			roman:  []string{"Thrakmar", "Hroethgar", "Kaelvin", "Moerdun", "Sigvaldr", "Thorvin", "Ulfgaest", "Vaegmund"},
		},
		feminine: partList{
			label:  "given",
			native: []string{"Æshild", "Dagrún", "Eyðis", "Hervǫr", "Jórunn", "Sæunn", "Védís", "Þyri"},
			roman:  []string{"Aeshild", "Dagrun", "Eydis", "Hervor", "Jorunn", "Saeunn", "Vedis", "Thyri"},
		},
		rest: []partList{
			{
				label:  "clan",
				native: []string{"Æskelheim", "Dyrnwæld", "Fjǫrgyn", "Hrafnmyr", "Mýrkvið", "Skjaldbrekk", "Vindhœll", "Ylgrheim"},
				roman:  []string{"Aeskelheim", "Dyrnwaeld", "Fjorgyn", "Hrafnmyr", "Myrkvid", "Skjaldbrekk", "Vindhoell", "Ylgrheim"},
			},
		},
	},
}
