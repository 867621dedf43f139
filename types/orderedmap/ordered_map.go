// Package orderedmap provides a generic map which remembers insertion order.
package orderedmap

import (
	"container/list"
)

// Element is a key-value pair held by an OrderedMap. Elements are linked in insertion order.
type Element[K comparable, V any] struct {
	Key   K
	Value V
	e     *list.Element
}

// Next returns the element inserted after this one or nil
func (el *Element[K, V]) Next() *Element[K, V] {
	if el == nil || el.e == nil {
		return nil
	}
	n := el.e.Next()
	if n == nil {
		return nil
	}

	return n.Value.(*Element[K, V])
}

// Prev returns the element inserted before this one or nil
func (el *Element[K, V]) Prev() *Element[K, V] {
	if el == nil || el.e == nil {
		return nil
	}
	p := el.e.Prev()
	if p == nil {
		return nil
	}

	return p.Value.(*Element[K, V])
}

// OrderedMap stores values by key and iterates them in insertion order
type OrderedMap[K comparable, V any] struct {
	store map[K]*Element[K, V]
	keys  *list.List
}

// NewOrderedMap creates an empty OrderedMap
func NewOrderedMap[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{
		store: map[K]*Element[K, V]{},
		keys:  list.New(),
	}
}

// Set stores a key-value pair. Overwriting an existing key keeps its original position.
func (o *OrderedMap[K, V]) Set(key K, val V) {
	if el, exists := o.store[key]; exists {
		el.Value = val
		return
	}
	el := &Element[K, V]{Key: key, Value: val}
	el.e = o.keys.PushBack(el)
	o.store[key] = el
}

// Get returns the value associated with key and whether it exists
func (o *OrderedMap[K, V]) Get(key K) (V, bool) {
	el, exists := o.store[key]
	if !exists {
		return *new(V), false
	}

	return el.Value, true
}

// Has reports whether key is stored
func (o *OrderedMap[K, V]) Has(key K) bool {
	_, exists := o.store[key]
	return exists
}

// Delete removes key and its value
func (o *OrderedMap[K, V]) Delete(key K) {
	el, exists := o.store[key]
	if !exists {
		return
	}
	o.keys.Remove(el.e)
	el.e = nil
	delete(o.store, key)
}

// Count returns the number of stored keys
func (o *OrderedMap[K, V]) Count() int {
	return o.keys.Len()
}

// Front returns the oldest element or nil
func (o *OrderedMap[K, V]) Front() *Element[K, V] {
	if o == nil || o.keys.Len() == 0 {
		return nil
	}

	return o.keys.Front().Value.(*Element[K, V])
}

// Back returns the newest element or nil
func (o *OrderedMap[K, V]) Back() *Element[K, V] {
	if o == nil || o.keys.Len() == 0 {
		return nil
	}

	return o.keys.Back().Value.(*Element[K, V])
}

// Keys returns all keys in insertion order
func (o *OrderedMap[K, V]) Keys() []K {
	keys := make([]K, 0, o.Count())
	for el := o.Front(); el != nil; el = el.Next() {
		keys = append(keys, el.Key)
	}

	return keys
}

// Values returns all values in insertion order
func (o *OrderedMap[K, V]) Values() []V {
	values := make([]V, 0, o.Count())
	for el := o.Front(); el != nil; el = el.Next() {
		values = append(values, el.Value)
	}

	return values
}
