package main

import (
	"fmt"
	"log"
	"os"

	"github.com/theflywheel/probehash"
)

func main() {
	// 11 is tiny on purpose so collisions are easy to follow
	for _, strategy := range probehash.Strategies() {
		table, err := probehash.New[int](11, strategy, probehash.HashInt)
		if err != nil {
			log.Fatalf("Failed to create table: %v", err)
		}

		fmt.Printf("== %s\n", strategy.Label())

		// 3, 14 and 25 all share primary slot 3
		for _, key := range []int{3, 14, 25, 3, -8} {
			res, err := table.Insert(key)
			if err != nil {
				log.Fatalf("Failed to insert key %d: %v", key, err)
			}
			switch res.Status {
			case probehash.Inserted:
				fmt.Printf("Inserted key=%d with %d probes\n", key, res.Probes)
			case probehash.Duplicate:
				fmt.Printf("Duplicate found for key=%d\n", key)
			}
		}

		// Look up a present and a missing key
		for _, key := range []int{25, 36} {
			if e, found := table.Search(key); found {
				fmt.Printf("Key %d => %s\n", key, e.Describe())
			} else {
				fmt.Printf("Key %d not found\n", key)
			}
		}

		fmt.Printf("Avg. no. of probes = %.2f\n", table.AverageProbes())
		if err := table.Dump(os.Stdout); err != nil {
			log.Fatalf("Failed to dump table: %v", err)
		}
		fmt.Println()
	}
}
