package dom

// KeyCode is the legacy numeric key code of a keyboard event.
type KeyCode int

const (
	KeyBackspace  KeyCode = 8
	KeyTab        KeyCode = 9
	KeyEnter      KeyCode = 13
	KeyShift      KeyCode = 16
	KeyCtrl       KeyCode = 17
	KeyAlt        KeyCode = 18
	KeyEscape     KeyCode = 27
	KeySpace      KeyCode = 32
	KeyArrowLeft  KeyCode = 37
	KeyArrowUp    KeyCode = 38
	KeyArrowRight KeyCode = 39
	KeyArrowDown  KeyCode = 40

	KeyDigit0 KeyCode = 48
	KeyDigit1 KeyCode = 49
	KeyDigit2 KeyCode = 50
	KeyDigit3 KeyCode = 51
	KeyDigit4 KeyCode = 52
	KeyDigit5 KeyCode = 53
	KeyDigit6 KeyCode = 54
	KeyDigit7 KeyCode = 55
	KeyDigit8 KeyCode = 56
	KeyDigit9 KeyCode = 57
)

const (
	KeyA KeyCode = iota + 65
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
)

// IsLetter reports whether k is one of KeyA through KeyZ.
func (k KeyCode) IsLetter() bool {
	return k >= KeyA && k <= KeyZ
}

// IsDigit reports whether k is one of KeyDigit0 through KeyDigit9.
func (k KeyCode) IsDigit() bool {
	return k >= KeyDigit0 && k <= KeyDigit9
}
