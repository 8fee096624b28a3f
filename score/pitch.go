package score

// Equal tempered pitches in Hz, rounded, with A4 at 440 Hz. Flats are
// written with an F suffix: EF5 is E flat 5.
const (
	C3  uint16 = 131
	DF3 uint16 = 139
	D3  uint16 = 147
	EF3 uint16 = 156
	E3  uint16 = 165
	F3  uint16 = 175
	GF3 uint16 = 185
	G3  uint16 = 196
	AF3 uint16 = 208
	A3  uint16 = 220
	BF3 uint16 = 233
	B3  uint16 = 247

	C4  uint16 = 262
	DF4 uint16 = 277
	D4  uint16 = 294
	EF4 uint16 = 311
	E4  uint16 = 330
	F4  uint16 = 349
	GF4 uint16 = 370
	G4  uint16 = 392
	AF4 uint16 = 415
	A4  uint16 = 440
	BF4 uint16 = 466
	B4  uint16 = 494

	C5  uint16 = 523
	DF5 uint16 = 554
	D5  uint16 = 587
	EF5 uint16 = 622
	E5  uint16 = 659
	F5  uint16 = 698
	GF5 uint16 = 740
	G5  uint16 = 784
	AF5 uint16 = 831
	A5  uint16 = 880
	BF5 uint16 = 932
	B5  uint16 = 988

	C6  uint16 = 1047
	DF6 uint16 = 1109
	D6  uint16 = 1175
	EF6 uint16 = 1245
	E6  uint16 = 1319
	F6  uint16 = 1397
	GF6 uint16 = 1480
	G6  uint16 = 1568
	AF6 uint16 = 1661
	A6  uint16 = 1760
	BF6 uint16 = 1865
	B6  uint16 = 1976
)
