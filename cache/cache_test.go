package cache

import (
	. "github.com/karlseguin/expect"
	"strconv"
	"testing"
	"time"
)

type CacheTests struct{}

func Test_Cache(t *testing.T) {
	Expectify(new(CacheTests), t)
}

func (_ CacheTests) SetsAValue() {
	cache := New(100000)
	cache.Set(1, []byte("the spice"))
	cache.Set(2, []byte("must flow"))
	Expect(string(cache.Get(1))).To.Equal("the spice")
	Expect(string(cache.Get(2))).To.Equal("must flow")
}

func (_ CacheTests) SetsOfNewItemAdjustsSize() {
	cache := New(100000)
	cache.Set(44, []byte("12345"))
	time.Sleep(time.Millisecond * 10)
	Expect(cache.size).To.Equal(5)
}

func (_ CacheTests) SetOfReplacementAdjustsSize() {
	cache := New(100000)
	cache.Set(44, []byte("12345"))
	time.Sleep(time.Millisecond * 10)
	cache.Set(44, []byte("123"))
	time.Sleep(time.Millisecond * 10)
	Expect(cache.size).To.Equal(3)
	Expect(cache.clock.ring.Len()).To.Equal(1)
}

func (_ CacheTests) GetsNil() {
	cache := New(100000)
	Expect(cache.Get(555)).To.Equal(nil)
}

func (_ CacheTests) DeletesAValue() {
	cache := New(100000)
	cache.Set(9, []byte("over"))
	time.Sleep(time.Millisecond * 10)
	cache.Delete(9)
	time.Sleep(time.Millisecond * 10)
	Expect(cache.Get(9)).To.Equal(nil)
	Expect(cache.size).To.Equal(0)
	Expect(cache.clock.ring.IsEmpty()).To.Equal(true)
	Expect(cache.clock.arena.Free()).To.Equal(1)
}

func (_ CacheTests) GCsTheOldestItems() {
	cache := New(2000)
	for i := 0; i < 1500; i++ {
		cache.Set(uint32(i), []byte(strconv.Itoa(i)))
	}
	time.Sleep(time.Millisecond * 10)
	Expect(cache.size).To.Equal(2000)
	Expect(cache.Get(5)).To.Equal(nil)
	Expect(cache.Get(999)).To.Equal(nil)
	Expect(string(cache.Get(1000))).To.Equal("1000")
	Expect(string(cache.Get(1499))).To.Equal("1499")
}

func (_ CacheTests) ReferencedItemsGetASecondChance() {
	cache := New(20)
	for i := 1; i <= 5; i++ {
		cache.Set(uint32(i), []byte("aaaa"))
	}
	time.Sleep(time.Millisecond * 10)
	cache.Get(1)
	cache.Set(6, []byte("bbbb"))
	time.Sleep(time.Millisecond * 10)
	Expect(cache.size).To.Equal(20)
	Expect(cache.Get(2)).To.Equal(nil)
	Expect(string(cache.Get(1))).To.Equal("aaaa")
	Expect(string(cache.Get(6))).To.Equal("bbbb")
}

func (_ CacheTests) ReusesHandlesOfEvictedEntries() {
	cache := New(8)
	for i := 0; i < 100; i++ {
		cache.Set(uint32(i), []byte("xxxx"))
	}
	time.Sleep(time.Millisecond * 10)
	Expect(cache.size).To.Equal(8)
	Expect(cache.clock.arena.Len()).To.Equal(3)
}
