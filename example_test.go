package arbor_test

import (
	"context"
	"fmt"

	"github.com/aretw0/arbor"
	"github.com/aretw0/arbor/pkg/domain"
	"github.com/aretw0/arbor/pkg/dsl"
	"github.com/aretw0/arbor/pkg/runner"
)

// ExampleNew_memory shows how to run a play against topics built in code.
func ExampleNew_memory() {
	loader, err := dsl.New().
		Topic("animale", dsl.Ask("zboara?").
			Yes(dsl.Guess("vultur", "animale", "pasare")).
			No(dsl.Guess("pisica", "animale", "mamifer"))).
		Build()
	if err != nil {
		panic(err)
	}

	eng, err := arbor.New("", arbor.WithLoader(loader))
	if err != nil {
		panic(err)
	}
	if err := eng.LoadAll(context.Background()); err != nil {
		panic(err)
	}

	out, _ := eng.Play(context.Background(), runner.NewSliceSource("animale", "nu", "da"))
	fmt.Println(out.Result(domain.Unknown))

	out, _ = eng.Play(context.Background(), runner.NewSliceSource("animale", "da", "nu"))
	fmt.Println(out.Result(domain.Unknown))

	// Output:
	// pisica
	// unknown
}
