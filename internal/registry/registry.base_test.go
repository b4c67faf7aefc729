package registry

import (
	"fmt"
	"sync"
	"testing"
)

// TestRegisterAndGet kiểm tra đăng ký và lấy item
func TestRegisterAndGet(t *testing.T) {
	r := NewRegistry[string]()

	isNew, err := r.Register("key", "value")
	if err != nil {
		t.Fatalf("Register trả về lỗi: %v", err)
	}
	if !isNew {
		t.Error("Register lần đầu phải trả về isNew = true")
	}

	isNew, err = r.Register("key", "value2")
	if err != nil {
		t.Fatalf("Register ghi đè trả về lỗi: %v", err)
	}
	if isNew {
		t.Error("Register ghi đè phải trả về isNew = false")
	}

	got, exists := r.Get("key")
	if !exists {
		t.Fatal("Get phải tìm thấy item đã đăng ký")
	}
	if got != "value2" {
		t.Errorf("Get = %q, mong muốn %q", got, "value2")
	}

	if _, exists := r.Get("missing"); exists {
		t.Error("Get với key không tồn tại phải trả về exists = false")
	}
}

// TestRegisterEmptyName kiểm tra đăng ký với name rỗng
func TestRegisterEmptyName(t *testing.T) {
	r := NewRegistry[int]()
	if _, err := r.Register("", 1); err == nil {
		t.Error("Register với name rỗng phải trả về lỗi")
	}
}

// TestClear kiểm tra xóa item với cleanup
func TestClear(t *testing.T) {
	r := NewRegistry[int]()
	r.Register("a", 1)

	cleaned := false
	deleted, err := r.Clear("a", func(int) error {
		cleaned = true
		return nil
	})
	if err != nil {
		t.Fatalf("Clear trả về lỗi: %v", err)
	}
	if !deleted {
		t.Error("Clear phải trả về deleted = true với item tồn tại")
	}
	if !cleaned {
		t.Error("Cleanup function phải được gọi trước khi xóa")
	}

	deleted, err = r.Clear("a", nil)
	if err != nil {
		t.Fatalf("Clear item không tồn tại trả về lỗi: %v", err)
	}
	if deleted {
		t.Error("Clear item không tồn tại phải trả về deleted = false")
	}
}

// TestClearAll kiểm tra xóa tất cả items
func TestClearAll(t *testing.T) {
	r := NewRegistry[int]()
	r.Register("a", 1)
	r.Register("b", 2)

	count, err := r.ClearAll(nil)
	if err != nil {
		t.Fatalf("ClearAll trả về lỗi: %v", err)
	}
	if count != 2 {
		t.Errorf("ClearAll = %d items, mong muốn 2", count)
	}
	if _, exists := r.Get("a"); exists {
		t.Error("Registry phải rỗng sau ClearAll")
	}
}

// TestConcurrentAccess kiểm tra thread-safety khi nhiều goroutines cùng truy cập
func TestConcurrentAccess(t *testing.T) {
	r := NewRegistry[int]()
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			name := fmt.Sprintf("item_%d", n)
			r.Register(name, n)
			r.Get(name)
		}(i)
	}
	wg.Wait()

	for i := 0; i < 50; i++ {
		name := fmt.Sprintf("item_%d", i)
		got, exists := r.Get(name)
		if !exists {
			t.Errorf("Không tìm thấy %s sau khi register đồng thời", name)
			continue
		}
		if got != i {
			t.Errorf("%s = %d, mong muốn %d", name, got, i)
		}
	}
}
