/*
Package dsl provides a fluent Go API for building knowledge trees in code.

It is meant for tests, examples and embedding small topics in a binary without a
document repository.

	animals := dsl.Ask("zboara?").
		Yes(dsl.Guess("vultur", "animale", "pasare")).
		No(dsl.Ask("are blana?").
			Yes(dsl.Guess("pisica", "animale", "mamifer")).
			No(dsl.Guess("peste", "animale", "acvatic")))

	loader, err := dsl.New().Topic("animale", animals).Build()
*/
package dsl
