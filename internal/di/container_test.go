package di

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestRegisterAndGet(t *testing.T) {
	c := NewContainer()
	c.Register("answer", 42)

	if got := c.Get("answer"); got != 42 {
		t.Errorf("Get = %v, want 42", got)
	}
}

func TestFactoryRunsOnce(t *testing.T) {
	c := NewContainer()

	var calls atomic.Int32
	c.RegisterFactory("service", func(sr ServiceRegistry) any {
		calls.Add(1)
		return "built"
	})

	for i := 0; i < 3; i++ {
		if got := c.Get("service"); got != "built" {
			t.Fatalf("Get = %v, want built", got)
		}
	}
	if n := calls.Load(); n != 1 {
		t.Errorf("factory ran %d times, want 1", n)
	}
}

func TestFactoryResolvesDependencies(t *testing.T) {
	c := NewContainer()
	c.Register("prefix", "hello ")
	c.RegisterFactory("greeting", func(sr ServiceRegistry) any {
		return sr.Get("prefix").(string) + "world"
	})

	if got := c.Get("greeting"); got != "hello world" {
		t.Errorf("Get = %v, want hello world", got)
	}
}

func TestConcurrentFirstGetSeesBuiltValue(t *testing.T) {
	c := NewContainer()

	var calls atomic.Int32
	c.RegisterFactory("service", func(sr ServiceRegistry) any {
		calls.Add(1)
		return &struct{ n int }{n: 7}
	})

	const goroutines = 16
	results := make([]any, goroutines)

	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			results[i] = c.Get("service")
		}(i)
	}
	close(start)
	wg.Wait()

	if n := calls.Load(); n != 1 {
		t.Fatalf("factory ran %d times, want 1", n)
	}
	for i, got := range results {
		if got == nil {
			t.Fatalf("goroutine %d observed nil value", i)
		}
		if got != results[0] {
			t.Errorf("goroutine %d got a different instance", i)
		}
	}
}

func TestGetUnknownPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Get of unregistered name did not panic")
		}
	}()

	NewContainer().Get("missing")
}
