// Copyright 2025 Ahmad Sameh(asmsh)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package worm_test

import (
	"testing"

	"github.com/asmsh/outcome/optional"
	"github.com/asmsh/outcome/worm"
)

type cellBench struct {
	name string

	// stressed will call 'SetParallelism(100)', if true, otherwise it won't.
	// it's special for the parallel benchmarks only.
	stressed bool
}

var cellBenchs = []cellBench{
	{name: "normal"},
	{name: "stressed", stressed: true},
}

func BenchmarkValue_Get(b *testing.B) {
	var o optional.Optional[int]

	b.Run("unset", func(b *testing.B) {
		w := worm.New[int]()

		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			o = w.Get()
		}
	})

	b.Run("present", func(b *testing.B) {
		w := worm.Of(1)

		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			o = w.Get()
		}
	})

	_ = o
}

func BenchmarkValue_Get_Parallel(b *testing.B) {
	for _, bc := range cellBenchs {
		b.Run(bc.name, func(b *testing.B) {
			w := worm.Of(1)

			if bc.stressed {
				b.SetParallelism(100)
			}

			b.ReportAllocs()
			b.ResetTimer()

			b.RunParallel(func(pb *testing.PB) {
				for pb.Next() {
					w.Get()
				}
			})
		})
	}
}

// the cell is already resolved, so every call takes the losing path.
func BenchmarkValue_Set(b *testing.B) {
	w := worm.Of(1)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = w.Set(2)
	}
}

func BenchmarkValue_Set_Parallel(b *testing.B) {
	for _, bc := range cellBenchs {
		b.Run(bc.name, func(b *testing.B) {
			w := worm.Of(1)

			if bc.stressed {
				b.SetParallelism(100)
			}

			b.ReportAllocs()
			b.ResetTimer()

			b.RunParallel(func(pb *testing.PB) {
				for pb.Next() {
					_ = w.Set(2)
				}
			})
		})
	}
}
