package score

// Songs are plain data; nothing here is ever modified.

var AuFeuLesPompiers = Score{
	Name:  "au-feu-les-pompiers",
	Tempo: 120 / 4,
	Notes: []Note{
		{G5, 1, 4, 90},
		{G5, 1, 4, 90},
		{B5, 1, 8, 90},
		{G5, 1, 8, 90},
		{D5, 1, 4, 90},
		{D5, 1, 8, 90},
		{D5, 1, 16, 90},
		{D5, 1, 16, 90},
		{D5, 1, 8, 90},
		{D5, 1, 8, 90},
		{B5, 1, 4, 90},
		{G5, 1, 4, 90},
		{G5, 1, 4, 90},
		{G5, 1, 4, 90},
		{B5, 1, 8, 90},
		{G5, 1, 8, 90},
		{D5, 1, 4, 90},
		{D5, 1, 8, 90},
		{D5, 1, 16, 90},
		{D5, 1, 16, 90},
		{D5, 1, 8, 90},
		{D5, 1, 8, 90},
		{G5, 1, 2, 90},
		{G5, 1, 8, 90},
		{G5, 1, 8, 90},
		{G5, 1, 8, 90},
		{B5, 1, 8, 90},
		{D6, 1, 8, 90},
		{B5, 1, 8, 90},
		{G5, 1, 4, 90},
		{D5, 1, 8, 90},
		{D6, 1, 8, 90},
		{D5, 1, 8, 90},
		{D6, 1, 8, 90},
		{B5, 1, 4, 90},
		{G5, 1, 4, 90},
		{G5, 1, 8, 90},
		{G5, 1, 8, 90},
		{G5, 1, 8, 90},
		{B5, 1, 8, 90},
		{D6, 1, 8, 90},
		{B5, 1, 8, 90},
		{G5, 1, 4, 90},
		{D5, 1, 8, 90},
		{D6, 1, 8, 90},
		{D5, 1, 8, 90},
		{D6, 1, 8, 90},
		{G5, 1, 2, 90},
	},
}

var BateauSurLeau = Score{
	Name:  "bateau-sur-l-eau",
	Tempo: 80 / 4,
	Notes: []Note{
		{E5, 1, 4, 95},
		{C5, 1, 4, 95},
		{E5, 1, 4, 95},
		{C5, 1, 4, 95},
		{D5, 1, 8, 95},
		{E5, 1, 8, 95},
		{F5, 1, 8, 95},
		{E5, 1, 8, 95},
		{D5, 1, 8, 95},
		{G5, 1, 8, 95},
		{E5, 1, 8, 95},
		{C5, 1, 8, 95},
		{E5, 1, 4, 95},
		{C5, 1, 4, 95},
		{E5, 1, 4, 95},
		{C5, 1, 4, 95},
		{D5, 1, 8, 95},
		{E5, 1, 8, 95},
		{F5, 1, 8, 95},
		{E5, 1, 8, 95},
		{D5, 1, 8, 95},
		{G5, 1, 8, 95},
		{C5, 1, 4, 95},
	},
}

var FrereJacques = Score{
	Name:  "frere-jacques",
	Tempo: 140 / 4,
	Notes: []Note{
		{C5, 1, 4, 90},
		{D5, 1, 4, 90},
		{E5, 1, 4, 90},
		{C5, 1, 4, 90},
		{C5, 1, 4, 90},
		{D5, 1, 4, 90},
		{E5, 1, 4, 90},
		{C5, 1, 4, 90},
		{E5, 1, 4, 90},
		{F5, 1, 4, 90},
		{G5, 1, 2, 90},
		{E5, 1, 4, 90},
		{F5, 1, 4, 90},
		{G5, 1, 2, 90},
		{G5, 3, 16, 90},
		{A5, 1, 16, 90},
		{G5, 1, 8, 90},
		{F5, 1, 8, 90},
		{E5, 1, 4, 90},
		{C5, 1, 4, 90},
		{G5, 3, 16, 90},
		{A5, 1, 16, 90},
		{G5, 1, 8, 90},
		{F5, 1, 8, 90},
		{E5, 1, 4, 90},
		{C5, 1, 4, 90},
		{C5, 1, 4, 90},
		{G4, 1, 4, 90},
		{C5, 1, 2, 90},
		{C5, 1, 4, 90},
		{G4, 1, 4, 90},
		{C5, 1, 2, 90},
	},
}

var IlEtaitUnPetitNavire = Score{
	Name:  "il-etait-un-petit-navire",
	Tempo: 100 / 4,
	Notes: []Note{
		{B5, 1, 8, 90},
		{B5, 1, 8, 90},
		{B5, 1, 8, 90},
		{D5, 1, 4, 90},
		{B5, 1, 4, 90},
		{C6, 1, 8, 90},
		{B5, 1, 8, 90},
		{B5, 1, 4, 90},
		{A5, 1, 8, 90},
		{A5, 1, 8, 90},
		{A5, 1, 8, 90},
		{A5, 1, 8, 90},
		{D5, 1, 4, 90},
		{A5, 1, 4, 90},
		{B5, 1, 8, 90},
		{A5, 1, 8, 90},
		{A5, 1, 4, 90},
		{G5, 1, 8, 90},
		{B5, 1, 8, 90},
		{B5, 1, 8, 90},
		{B5, 1, 8, 90},
		{B5, 1, 4, 90},
		{B5, 1, 4, 90},
		{B5, 1, 8, 90},
		{D6, 1, 8, 90},
		{C6, 1, 8, 90},
		{B5, 1, 8, 90},
		{A5, 1, 8, 90},
		{A5, 1, 8, 90},
		{A5, 1, 8, 90},
		{A5, 1, 8, 90},
		{A5, 1, 4, 90},
		{A5, 1, 4, 90},
		{A5, 1, 8, 90},
		{C6, 1, 8, 90},
		{B5, 1, 8, 90},
		{A5, 1, 8, 90},
		{G5, 1, 8, 90},
		{D5, 1, 8, 90},
		{G5, 1, 8, 90},
		{B5, 1, 8, 90},
		{D6, 1, 2, 90},
		{B5, 1, 4, 90},
		{D6, 1, 4, 90},
		{B5, 1, 4, 90},
		{D6, 1, 4, 90},
		{C6, 3, 16, 90},
		{B5, 1, 16, 90},
		{A5, 1, 2, 90},
		{A5, 3, 16, 90},
		{B5, 1, 16, 90},
		{C6, 3, 16, 90},
		{D6, 1, 16, 90},
		{E6, 1, 4, 90},
		{D6, 1, 4, 90},
		{E6, 1, 4, 90},
		{D6, 1, 4, 90},
		{B5, 3, 4, 90},
		{B5, 1, 4, 90},
		{D6, 1, 4, 90},
		{B5, 1, 4, 90},
		{D6, 1, 4, 90},
		{C6, 3, 16, 90},
		{B5, 1, 16, 90},
		{A5, 1, 2, 90},
		{A5, 3, 16, 90},
		{B5, 1, 16, 90},
		{C6, 3, 16, 90},
		{D6, 1, 16, 90},
		{E6, 1, 4, 90},
		{D6, 1, 4, 90},
		{E6, 1, 4, 90},
		{D6, 1, 4, 90},
		{G5, 5, 8, 90},
	},
}

var LAventurier = Score{
	Name:  "l-aventurier",
	Tempo: 160 / 4,
	Notes: []Note{
		{A4, 1, 4, 95},
		{D5, 1, 8, 95},
		{E5, 1, 8, 95},
		{G5, 1, 4, 95},
		{E5, 1, 4, 95},
		{D5, 1, 8, 95},
		{C5, 1, 4, 95},
		{A4, 5, 8, 95},
		{C5, 1, 4, 95},
		{D5, 1, 8, 95},
		{E5, 1, 8, 95},
		{G5, 1, 4, 95},
		{E5, 1, 4, 95},
		{D5, 1, 8, 95},
		{E5, 1, 8, 95},
		{D5, 1, 8, 95},
		{E5, 5, 8, 95},
	},
}

var MarioThemeIntro = Score{
	Name:  "mario-theme-intro",
	Tempo: 185 / 4,
	Notes: []Note{
		{E5, 1, 8, 50},
		{E5, 1, 4, 25},
		{E5, 1, 4, 25},
		{C5, 1, 8, 50},
		{E5, 1, 4, 25},
		{G5, 1, 2, 25},
		{G4, 1, 2, 25},
	},
}

var SoWhat = Score{
	Name:  "so-what",
	Tempo: 120 / 8 * 3,
	Notes: []Note{
		{D3, 2, 8, 0},
		{D3, 1, 8, 80},
		{A3, 2, 8, 80},
		{B3, 1, 8, 80},
		{C4, 2, 8, 80},
		{D4, 1, 8, 80},
		{E4, 2, 8, 80},
		{C4, 1, 8, 30},
		{D4, 6, 8, 60},
		{E5, 5, 8, 100},
		{D5, 1, 8, 50},
		{D3, 2, 8, 0},
		{D3, 1, 8, 80},
		{A3, 2, 8, 80},
		{B3, 1, 8, 80},
		{C4, 2, 8, 80},
		{D4, 1, 8, 80},
		{E4, 2, 8, 80},
		{C4, 1, 8, 30},
		{D4, 2, 8, 80},
		{A3, 4, 8, 60},
		{E5, 5, 8, 100},
		{D5, 1, 8, 50},
		{D3, 2, 8, 0},
		{D3, 1, 8, 80},
		{A3, 2, 8, 80},
		{B3, 1, 8, 80},
		{C4, 2, 8, 80},
		{D4, 1, 8, 80},
		{E4, 2, 8, 80},
		{C4, 1, 8, 30},
		{D4, 6, 8, 60},
		{E5, 5, 8, 100},
		{D5, 1, 8, 50},
		{E4, 2, 8, 00},
		{E4, 4, 8, 80},
		{E4, 3, 8, 80},
		{E4, 3, 8, 80},
		{D4, 5, 8, 80},
		{A3, 1, 8, 100},
		{E5, 5, 8, 100},
		{D5, 1, 8, 50},
	},
}

var ThirdKind = Score{
	Name:  "third-kind",
	Tempo: 120 / 4,
	Notes: []Note{
		{BF5, 1, 4, 100},
		{C6, 1, 4, 100},
		{AF5, 1, 4, 100},
		{AF4, 1, 4, 100},
		{EF5, 1, 2, 100},
		{BF5, 1, 2, 0},
	},
}

// Songs returns every built-in song, in a stable order.
func Songs() []Score {
	return []Score{
		AuFeuLesPompiers,
		BateauSurLeau,
		FrereJacques,
		IlEtaitUnPetitNavire,
		LAventurier,
		MarioThemeIntro,
		SoWhat,
		ThirdKind,
	}
}

// Lookup finds a built-in song by name.
func Lookup(name string) (Score, bool) {
	for _, s := range Songs() {
		if s.Name == name {
			return s, true
		}
	}
	return Score{}, false
}
