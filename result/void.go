package result

// Void is the payload of a success that carries no value. A Result[Void, E]
// still panics from Unwrap and Expect when it holds an Err, and every
// combinator applies unchanged.
type Void struct{}

// OkVoid returns a valueless success.
func OkVoid[E any]() Result[Void, E] {
	return Ok[Void, E](Void{})
}
