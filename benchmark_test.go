package blaskontrol_test

import (
	"testing"

	"github.com/NBlasko/blaskontrol"
	"github.com/NBlasko/blaskontrol/mock"
)

func BenchmarkSingletonResolution(b *testing.B) {
	root := blaskontrol.New()
	key := blaskontrol.NewServiceKey("db")
	if err := root.BindAsConstant(key, &mock.MockDB{Addr: "bench"}); err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := root.Get(key); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkTransientResolution(b *testing.B) {
	root := blaskontrol.New()
	key := blaskontrol.NewServiceKey("counter")
	err := blaskontrol.BindDynamic(root, key, func(*blaskontrol.Container) (*mock.Counter, error) {
		return &mock.Counter{}, nil
	}, blaskontrol.InScope(blaskontrol.ScopeTransient))
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := root.Get(key); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRequestResolutionOnChild(b *testing.B) {
	root := blaskontrol.New()
	key := blaskontrol.NewServiceKey("ctx")
	err := blaskontrol.BindDynamic(root, key, func(*blaskontrol.Container) (*mock.RequestContext, error) {
		return &mock.RequestContext{}, nil
	}, blaskontrol.InScope(blaskontrol.ScopeRequest))
	if err != nil {
		b.Fatal(err)
	}
	child := root.CreateChild()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := child.Get(key); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCreateChild(b *testing.B) {
	root := blaskontrol.New()
	for i := 0; i < 32; i++ {
		key := blaskontrol.NewServiceKey("svc")
		err := blaskontrol.BindDynamic(root, key, func(*blaskontrol.Container) (*mock.Counter, error) {
			return &mock.Counter{}, nil
		}, blaskontrol.InScope(blaskontrol.ScopeTransient))
		if err != nil {
			b.Fatal(err)
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		root.CreateChild()
	}
}

func BenchmarkParallelSingletonResolution(b *testing.B) {
	root := blaskontrol.New()
	key := blaskontrol.NewServiceKey("db")
	if err := root.BindAsConstant(key, &mock.MockDB{Addr: "bench"}); err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if _, err := root.Get(key); err != nil {
				b.Fatal(err)
			}
		}
	})
}
