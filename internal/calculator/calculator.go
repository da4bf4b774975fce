package calculator

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"sync"
)

var (
	// ErrDivisionByZero is returned by Divide when the divisor is zero.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrUnknownOperation is returned by Apply for an unrecognised op name.
	ErrUnknownOperation = errors.New("unknown operation")

	// ErrOverflow is returned by Apply and Divide when the result is not a
	// finite number.
	ErrOverflow = errors.New("result out of range")
)

const (
	addFormat      = "Added %s + %s = %s"
	subtractFormat = "Subtracted %s - %s = %s"
	multiplyFormat = "Multiplied %s * %s = %s"
	divideFormat   = "Divided %s / %s = %s"
)

// Calculator performs arithmetic and keeps an append-only log of every
// successful operation. It is safe for concurrent use.
type Calculator struct {
	mu      sync.Mutex
	history []string
}

// New returns a Calculator with an empty history.
func New() *Calculator {
	return &Calculator{}
}

// Add returns a + b. Callers that need overflow checking use Apply.
func (c *Calculator) Add(a, b float64) float64 {
	result := a + b
	c.record(addFormat, a, b, result)
	return result
}

// Subtract returns a - b.
func (c *Calculator) Subtract(a, b float64) float64 {
	result := a - b
	c.record(subtractFormat, a, b, result)
	return result
}

// Multiply returns a * b.
func (c *Calculator) Multiply(a, b float64) float64 {
	result := a * b
	c.record(multiplyFormat, a, b, result)
	return result
}

// Divide returns a / b. A zero divisor yields ErrDivisionByZero and a
// non-finite quotient yields ErrOverflow; neither touches the history.
func (c *Calculator) Divide(a, b float64) (float64, error) {
	return c.Apply("divide", a, b)
}

// Apply runs the named operation ("add", "subtract", "multiply", "divide").
// Only finite results are recorded and returned; anything else is ErrOverflow.
func (c *Calculator) Apply(op string, a, b float64) (float64, error) {
	var (
		result float64
		format string
	)

	switch op {
	case "add":
		result, format = a+b, addFormat
	case "subtract":
		result, format = a-b, subtractFormat
	case "multiply":
		result, format = a*b, multiplyFormat
	case "divide":
		if b == 0 {
			return 0, fmt.Errorf("%w: %s / %s", ErrDivisionByZero, formatNumber(a), formatNumber(b))
		}
		result, format = a/b, divideFormat
	default:
		return 0, fmt.Errorf("%w %q", ErrUnknownOperation, op)
	}

	if math.IsNaN(result) || math.IsInf(result, 0) {
		return 0, fmt.Errorf("%w: %s %s", ErrOverflow, op, formatNumber(result))
	}

	c.record(format, a, b, result)
	return result, nil
}

// History returns a copy of the operation log, oldest first.
func (c *Calculator) History() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]string, len(c.history))
	copy(out, c.history)
	return out
}

// Len returns the number of recorded operations.
func (c *Calculator) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.history)
}

func (c *Calculator) record(format string, a, b, result float64) {
	entry := fmt.Sprintf(format, formatNumber(a), formatNumber(b), formatNumber(result))

	c.mu.Lock()
	c.history = append(c.history, entry)
	c.mu.Unlock()
}

// formatNumber renders v in its shortest decimal form, so whole numbers
// print without a fractional part.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
