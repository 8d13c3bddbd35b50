package draw

// DrawError is a custom error type for draw-related errors
type DrawError string

// Error implements the error interface
func (e DrawError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig        DrawError = "config cannot be nil"
	ErrNilCooldownRepo  DrawError = "cooldown repository cannot be nil"
	ErrNilHandRepo      DrawError = "hand repository cannot be nil"
	ErrNilLedgerRepo    DrawError = "ledger repository cannot be nil"
	ErrNilCatalog       DrawError = "catalog cannot be nil"
	ErrNilSampler       DrawError = "sampler cannot be nil"
	ErrNilGateway       DrawError = "gateway cannot be nil"
	ErrNilClock         DrawError = "clock cannot be nil"
	ErrNilUUIDGenerator DrawError = "UUID generator cannot be nil"
	ErrInvalidInput     DrawError = "input, channel ID, thread timestamp and actor key cannot be empty"
)
