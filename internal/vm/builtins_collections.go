package vm

import "github.com/forgelang/forge/internal/value"

// registerCollectionBuiltins wires list/dict/tuple construction and the
// list_*/dict_* word families.
func (vm *VM) registerCollectionBuiltins() {
	vm.builtins["list"] = (*VM).wordListNew
	vm.builtins["dict"] = (*VM).wordDictNew
	vm.builtins["tuple"] = (*VM).wordTupleNew

	vm.builtins["list_len"] = (*VM).wordListLen
	vm.builtins["list_get"] = (*VM).wordListGet
	vm.builtins["list_set"] = (*VM).wordListSet
	vm.builtins["list_append"] = (*VM).wordListAppend
	vm.builtins["list_pop"] = (*VM).wordListPop
	vm.builtins["list_insert"] = (*VM).wordListInsert
	vm.builtins["list_remove"] = (*VM).wordListRemove
	vm.builtins["list_extend"] = (*VM).wordListExtend
	vm.builtins["list_sort"] = (*VM).wordListSort
	vm.builtins["list_reverse"] = (*VM).wordListReverse
	vm.builtins["list_clear"] = (*VM).wordListClear
	vm.builtins["list_copy"] = (*VM).wordListCopy
	vm.builtins["list_slice"] = (*VM).wordListSlice
	vm.builtins["list_index"] = (*VM).wordListIndex
	vm.builtins["list_count"] = (*VM).wordListCount
	vm.builtins["list_contains"] = (*VM).wordListContains
	vm.builtins["list_sum"] = (*VM).wordListSum
	vm.builtins["list_min"] = (*VM).wordListMin
	vm.builtins["list_max"] = (*VM).wordListMax

	vm.builtins["dict_get"] = (*VM).wordDictGet
	vm.builtins["dict_set"] = (*VM).wordDictSet
	vm.builtins["dict_pop"] = (*VM).wordDictPop
	vm.builtins["dict_has"] = (*VM).wordDictHas
	vm.builtins["dict_len"] = (*VM).wordDictLen
	vm.builtins["dict_keys"] = (*VM).wordDictKeys
	vm.builtins["dict_values"] = (*VM).wordDictValues
	vm.builtins["dict_items"] = (*VM).wordDictItems
}

func (vm *VM) popCount(context string) (int, error) {
	n, err := vm.pop()
	if err != nil {
		return 0, err
	}
	if !n.IsInt() {
		return 0, vm.typeError(context, "Integer", n.Kind.String())
	}
	if n.AsInt() < 0 {
		return 0, vm.indexError("%s: negative count %d", context, n.AsInt())
	}
	return int(n.AsInt()), nil
}

// wordListNew implements "v1 v2 … vN N list": pop the count, then pop N
// values, pushing a List with the first-pushed value at index 0.
func (vm *VM) wordListNew() error {
	n, err := vm.popCount("list")
	if err != nil {
		return err
	}
	elems := make([]value.Value, n)
	for i := n - 1; i >= 0; i-- {
		v, err := vm.pop()
		if err != nil {
			return err
		}
		elems[i] = v
	}
	vm.push(value.ListVal(value.NewList(elems...)))
	return nil
}

// wordDictNew implements "k1 v1 … kN vN N dict": pop the count, then pop 2N
// values as alternating key/value pairs, preserving first-seen order.
func (vm *VM) wordDictNew() error {
	n, err := vm.popCount("dict")
	if err != nil {
		return err
	}
	pairs := make([]value.Value, n*2)
	for i := n*2 - 1; i >= 0; i-- {
		v, err := vm.pop()
		if err != nil {
			return err
		}
		pairs[i] = v
	}
	d := value.NewDict()
	for i := 0; i < n; i++ {
		key := pairs[i*2]
		val := pairs[i*2+1]
		if !key.IsStr() {
			return vm.typeError("dict", "Str key", key.Kind.String())
		}
		d.Set(key.AsStr(), val)
	}
	vm.push(value.DictVal(d))
	return nil
}

// wordTupleNew implements "v1 v2 … vN N tuple", the literal-construction
// word symmetric with list/dict, so tuples (the dict_items element type)
// can be built directly.
func (vm *VM) wordTupleNew() error {
	n, err := vm.popCount("tuple")
	if err != nil {
		return err
	}
	elems := make([]value.Value, n)
	for i := n - 1; i >= 0; i-- {
		v, err := vm.pop()
		if err != nil {
			return err
		}
		elems[i] = v
	}
	vm.push(value.TupleVal(elems))
	return nil
}

func (vm *VM) popList(context string) (*value.List, error) {
	v, err := vm.pop()
	if err != nil {
		return nil, err
	}
	if !v.IsList() {
		return nil, vm.typeError(context, "List", v.Kind.String())
	}
	return v.AsList(), nil
}

func (vm *VM) popIndex(context string) (int, error) {
	v, err := vm.pop()
	if err != nil {
		return 0, err
	}
	if !v.IsInt() {
		return 0, vm.typeError(context, "Integer", v.Kind.String())
	}
	return int(v.AsInt()), nil
}

func (vm *VM) wordListLen() error {
	l, err := vm.popList("list_len")
	if err != nil {
		return err
	}
	vm.push(value.Int(int64(l.Len())))
	return nil
}

func (vm *VM) wordListGet() error {
	idx, err := vm.popIndex("list_get")
	if err != nil {
		return err
	}
	l, err := vm.popList("list_get")
	if err != nil {
		return err
	}
	v, err := l.Get(idx)
	if err != nil {
		return vm.indexError(err.Error())
	}
	vm.push(v)
	return nil
}

func (vm *VM) wordListSet() error {
	val, err := vm.pop()
	if err != nil {
		return err
	}
	idx, err := vm.popIndex("list_set")
	if err != nil {
		return err
	}
	l, err := vm.popList("list_set")
	if err != nil {
		return err
	}
	if err := l.Set(idx, val); err != nil {
		return vm.indexError(err.Error())
	}
	return nil
}

func (vm *VM) wordListAppend() error {
	val, err := vm.pop()
	if err != nil {
		return err
	}
	l, err := vm.popList("list_append")
	if err != nil {
		return err
	}
	l.Append(val)
	return nil
}

func (vm *VM) wordListPop() error {
	idx, err := vm.popIndex("list_pop")
	if err != nil {
		return err
	}
	l, err := vm.popList("list_pop")
	if err != nil {
		return err
	}
	v, err := l.Pop(idx)
	if err != nil {
		return vm.indexError(err.Error())
	}
	vm.push(v)
	return nil
}

func (vm *VM) wordListInsert() error {
	val, err := vm.pop()
	if err != nil {
		return err
	}
	idx, err := vm.popIndex("list_insert")
	if err != nil {
		return err
	}
	l, err := vm.popList("list_insert")
	if err != nil {
		return err
	}
	if err := l.Insert(idx, val); err != nil {
		return vm.indexError(err.Error())
	}
	return nil
}

func (vm *VM) wordListRemove() error {
	idx, err := vm.popIndex("list_remove")
	if err != nil {
		return err
	}
	l, err := vm.popList("list_remove")
	if err != nil {
		return err
	}
	if err := l.Remove(idx); err != nil {
		return vm.indexError(err.Error())
	}
	return nil
}

func (vm *VM) wordListExtend() error {
	other, err := vm.popList("list_extend")
	if err != nil {
		return err
	}
	l, err := vm.popList("list_extend")
	if err != nil {
		return err
	}
	l.Extend(other)
	return nil
}

func (vm *VM) wordListSort() error {
	l, err := vm.popList("list_sort")
	if err != nil {
		return err
	}
	if err := l.Sort(); err != nil {
		return vm.typeError("list_sort", "a uniformly comparable list", "mixed elements")
	}
	return nil
}

func (vm *VM) wordListReverse() error {
	l, err := vm.popList("list_reverse")
	if err != nil {
		return err
	}
	l.Reverse()
	return nil
}

func (vm *VM) wordListClear() error {
	l, err := vm.popList("list_clear")
	if err != nil {
		return err
	}
	l.Clear()
	return nil
}

func (vm *VM) wordListCopy() error {
	l, err := vm.popList("list_copy")
	if err != nil {
		return err
	}
	vm.push(value.ListVal(l.Copy()))
	return nil
}

func (vm *VM) wordListSlice() error {
	hi, err := vm.popIndex("list_slice")
	if err != nil {
		return err
	}
	lo, err := vm.popIndex("list_slice")
	if err != nil {
		return err
	}
	l, err := vm.popList("list_slice")
	if err != nil {
		return err
	}
	sl, err := l.Slice(lo, hi)
	if err != nil {
		return vm.indexError(err.Error())
	}
	vm.push(value.ListVal(sl))
	return nil
}

func (vm *VM) wordListIndex() error {
	val, err := vm.pop()
	if err != nil {
		return err
	}
	l, err := vm.popList("list_index")
	if err != nil {
		return err
	}
	vm.push(value.Int(int64(l.Index(val))))
	return nil
}

func (vm *VM) wordListCount() error {
	val, err := vm.pop()
	if err != nil {
		return err
	}
	l, err := vm.popList("list_count")
	if err != nil {
		return err
	}
	vm.push(value.Int(int64(l.Count(val))))
	return nil
}

func (vm *VM) wordListContains() error {
	val, err := vm.pop()
	if err != nil {
		return err
	}
	l, err := vm.popList("list_contains")
	if err != nil {
		return err
	}
	vm.push(value.Bool(l.Contains(val)))
	return nil
}

func (vm *VM) wordListSum() error {
	l, err := vm.popList("list_sum")
	if err != nil {
		return err
	}
	v, err := l.Sum()
	if err != nil {
		return vm.typeError("list_sum", "a list of numbers", "a non-numeric element")
	}
	vm.push(v)
	return nil
}

func (vm *VM) wordListMin() error {
	l, err := vm.popList("list_min")
	if err != nil {
		return err
	}
	v, err := l.Min()
	if err != nil {
		return vm.indexError("list_min: %s", err.Error())
	}
	vm.push(v)
	return nil
}

func (vm *VM) wordListMax() error {
	l, err := vm.popList("list_max")
	if err != nil {
		return err
	}
	v, err := l.Max()
	if err != nil {
		return vm.indexError("list_max: %s", err.Error())
	}
	vm.push(v)
	return nil
}

func (vm *VM) popDict(context string) (*value.Dict, error) {
	v, err := vm.pop()
	if err != nil {
		return nil, err
	}
	if !v.IsDict() {
		return nil, vm.typeError(context, "Dict", v.Kind.String())
	}
	return v.AsDict(), nil
}

func (vm *VM) popKey(context string) (string, error) {
	v, err := vm.pop()
	if err != nil {
		return "", err
	}
	if !v.IsStr() {
		return "", vm.typeError(context, "Str", v.Kind.String())
	}
	return v.AsStr(), nil
}

func (vm *VM) wordDictGet() error {
	key, err := vm.popKey("dict_get")
	if err != nil {
		return err
	}
	d, err := vm.popDict("dict_get")
	if err != nil {
		return err
	}
	vm.push(d.Get(key))
	return nil
}

func (vm *VM) wordDictSet() error {
	val, err := vm.pop()
	if err != nil {
		return err
	}
	key, err := vm.popKey("dict_set")
	if err != nil {
		return err
	}
	d, err := vm.popDict("dict_set")
	if err != nil {
		return err
	}
	d.Set(key, val)
	return nil
}

func (vm *VM) wordDictPop() error {
	key, err := vm.popKey("dict_pop")
	if err != nil {
		return err
	}
	d, err := vm.popDict("dict_pop")
	if err != nil {
		return err
	}
	v, err := d.Pop(key)
	if err != nil {
		return vm.indexError(err.Error())
	}
	vm.push(v)
	return nil
}

func (vm *VM) wordDictHas() error {
	key, err := vm.popKey("dict_has")
	if err != nil {
		return err
	}
	d, err := vm.popDict("dict_has")
	if err != nil {
		return err
	}
	vm.push(value.Bool(d.Has(key)))
	return nil
}

func (vm *VM) wordDictLen() error {
	d, err := vm.popDict("dict_len")
	if err != nil {
		return err
	}
	vm.push(value.Int(int64(d.Len())))
	return nil
}

func (vm *VM) wordDictKeys() error {
	d, err := vm.popDict("dict_keys")
	if err != nil {
		return err
	}
	vm.push(value.ListVal(d.Keys()))
	return nil
}

func (vm *VM) wordDictValues() error {
	d, err := vm.popDict("dict_values")
	if err != nil {
		return err
	}
	vm.push(value.ListVal(d.Values()))
	return nil
}

func (vm *VM) wordDictItems() error {
	d, err := vm.popDict("dict_items")
	if err != nil {
		return err
	}
	vm.push(value.ListVal(d.Items()))
	return nil
}
