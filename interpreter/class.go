package interpreter

// Class is a Lox class value: itself callable (as a constructor), per
// spec.md §3.6 and §4.4.5.
type Class struct {
	Name       string
	Superclass *Class
	Methods    map[string]*Function
}

func NewClass(name string, superclass *Class, methods map[string]*Function) *Class {
	return &Class{Name: name, Superclass: superclass, Methods: methods}
}

// FindMethod implements spec.md §4.4.7: leftmost-in-chain wins, else
// recurse into the superclass, else not found.
func (c *Class) FindMethod(name string) *Function {
	if m, ok := c.Methods[name]; ok {
		return m
	}
	if c.Superclass != nil {
		return c.Superclass.FindMethod(name)
	}
	return nil
}

func (c *Class) Arity() int {
	if init := c.FindMethod("init"); init != nil {
		return init.Arity()
	}
	return 0
}

func (c *Class) Call(in *Interpreter, args []Value) (Value, error) {
	inst := NewInstance(c)
	if init := c.FindMethod("init"); init != nil {
		if _, err := init.Bind(inst).Call(in, args); err != nil {
			return nil, err
		}
	}
	return inst, nil
}

func (c *Class) String() string { return c.Name }

var _ Callable = (*Class)(nil)

// Instance is a runtime object created from a Class: a class pointer plus
// a field map, per spec.md §3.6. Fields shadow methods on lookup.
type Instance struct {
	class  *Class
	fields map[string]Value
}

func NewInstance(class *Class) *Instance {
	return &Instance{class: class, fields: map[string]Value{}}
}

// Get implements spec.md §4.4.6's Get semantics for an instance target.
func (i *Instance) Get(name string) (Value, bool) {
	if v, ok := i.fields[name]; ok {
		return v, true
	}
	if m := i.class.FindMethod(name); m != nil {
		return m.Bind(i), true
	}
	return nil, false
}

func (i *Instance) Set(name string, value Value) {
	i.fields[name] = value
}

func (i *Instance) String() string { return i.class.Name + " instance" }
