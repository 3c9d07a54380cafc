package domain

// Pitch is a named note frequency in Hz, matching the SparkFun Qwiic buzzer
// nomenclature: letter, optional S for sharp, then octave. S alone is a rest.
type Pitch int

const (
	S  Pitch = 0 // rest
	B0 Pitch = 31

	C1  Pitch = 33
	CS1 Pitch = 35
	D1  Pitch = 37
	DS1 Pitch = 39
	E1  Pitch = 41
	F1  Pitch = 44
	FS1 Pitch = 46
	G1  Pitch = 49
	GS1 Pitch = 52
	A1  Pitch = 55
	AS1 Pitch = 58
	B1  Pitch = 62

	C2  Pitch = 65
	CS2 Pitch = 69
	D2  Pitch = 73
	DS2 Pitch = 78
	E2  Pitch = 82
	F2  Pitch = 87
	FS2 Pitch = 93
	G2  Pitch = 98
	GS2 Pitch = 104
	A2  Pitch = 110
	AS2 Pitch = 117
	B2  Pitch = 123

	C3  Pitch = 131
	CS3 Pitch = 139
	D3  Pitch = 147
	DS3 Pitch = 156
	E3  Pitch = 165
	F3  Pitch = 175
	FS3 Pitch = 185
	G3  Pitch = 196
	GS3 Pitch = 208
	A3  Pitch = 220
	AS3 Pitch = 233
	B3  Pitch = 247

	C4  Pitch = 262
	CS4 Pitch = 277
	D4  Pitch = 294
	DS4 Pitch = 311
	E4  Pitch = 330
	F4  Pitch = 349
	FS4 Pitch = 370
	G4  Pitch = 392
	GS4 Pitch = 415
	A4  Pitch = 440
	AS4 Pitch = 466
	B4  Pitch = 494

	C5  Pitch = 523
	CS5 Pitch = 554
	D5  Pitch = 587
	DS5 Pitch = 622
	E5  Pitch = 659
	F5  Pitch = 698
	FS5 Pitch = 740
	G5  Pitch = 784
	GS5 Pitch = 831
	A5  Pitch = 880
	AS5 Pitch = 932
	B5  Pitch = 988

	C6  Pitch = 1047
	CS6 Pitch = 1109
	D6  Pitch = 1175
	DS6 Pitch = 1245
	E6  Pitch = 1319
	F6  Pitch = 1397
	FS6 Pitch = 1480
	G6  Pitch = 1568
	GS6 Pitch = 1661
	A6  Pitch = 1760
	AS6 Pitch = 1865
	B6  Pitch = 1976

	C7  Pitch = 2093
	CS7 Pitch = 2217
	D7  Pitch = 2349
	DS7 Pitch = 2489
	E7  Pitch = 2637
	F7  Pitch = 2794
	FS7 Pitch = 2960
	G7  Pitch = 3136
	GS7 Pitch = 3322
	A7  Pitch = 3520
	AS7 Pitch = 3729
	B7  Pitch = 3951

	C8  Pitch = 4186
	CS8 Pitch = 4435
	D8  Pitch = 4699
	DS8 Pitch = 4978
)

// PitchByName maps pitch names ("C5", "FS3", "S", ...) to their frequencies.
// It is the lookup table behind the tab translator.
var PitchByName = map[string]Pitch{
	"S": S, "B0": B0,
	"C1": C1, "CS1": CS1, "D1": D1, "DS1": DS1, "E1": E1, "F1": F1,
	"FS1": FS1, "G1": G1, "GS1": GS1, "A1": A1, "AS1": AS1, "B1": B1,
	"C2": C2, "CS2": CS2, "D2": D2, "DS2": DS2, "E2": E2, "F2": F2,
	"FS2": FS2, "G2": G2, "GS2": GS2, "A2": A2, "AS2": AS2, "B2": B2,
	"C3": C3, "CS3": CS3, "D3": D3, "DS3": DS3, "E3": E3, "F3": F3,
	"FS3": FS3, "G3": G3, "GS3": GS3, "A3": A3, "AS3": AS3, "B3": B3,
	"C4": C4, "CS4": CS4, "D4": D4, "DS4": DS4, "E4": E4, "F4": F4,
	"FS4": FS4, "G4": G4, "GS4": GS4, "A4": A4, "AS4": AS4, "B4": B4,
	"C5": C5, "CS5": CS5, "D5": D5, "DS5": DS5, "E5": E5, "F5": F5,
	"FS5": FS5, "G5": G5, "GS5": GS5, "A5": A5, "AS5": AS5, "B5": B5,
	"C6": C6, "CS6": CS6, "D6": D6, "DS6": DS6, "E6": E6, "F6": F6,
	"FS6": FS6, "G6": G6, "GS6": GS6, "A6": A6, "AS6": AS6, "B6": B6,
	"C7": C7, "CS7": CS7, "D7": D7, "DS7": DS7, "E7": E7, "F7": F7,
	"FS7": FS7, "G7": G7, "GS7": GS7, "A7": A7, "AS7": AS7, "B7": B7,
	"C8": C8, "CS8": CS8, "D8": D8, "DS8": DS8,
}

// LookupPitch resolves a pitch name. The second return value is false for
// unknown names.
func LookupPitch(name string) (Pitch, bool) {
	p, ok := PitchByName[name]
	return p, ok
}
