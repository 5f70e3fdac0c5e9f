// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package dilo

import (
	"reflect"
	"strings"

	"github.com/pkg/errors"
)

// Updater is the interface that custom devices built using reflection must
// implement. Update must compute the output fields from the input fields.
//
type Updater interface {
	Update()
}

// MakeDevice wraps a pointer to a struct implementing Updater into a Device.
// Input/output ports are identified by field tags.
//
// The field tag must be `hw:"in"` or `hw:"out"` to identify input and output
// ports. By default, the port name is the field name in lowercase. A specific
// name can be forced by adding it in the tag: `hw:"in,port_name"`. Tagged
// fields must be of type bool.
//
// The returned device reads and writes the struct fields directly. Update is
// called once before MakeDevice returns.
//
func MakeDevice(u Updater) (Device, error) {
	v := reflect.ValueOf(u)
	if v.Kind() != reflect.Ptr || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return nil, errors.Errorf("unsupported type %T: want a pointer to a struct", u)
	}
	e := v.Elem()
	typ := e.Type()
	d := &structDevice{u: u, name: typ.Name()}

	n := typ.NumField()
	for i := 0; i < n; i++ {
		f := typ.Field(i)
		tag, ok := f.Tag.Lookup("hw")
		if !ok {
			continue
		}
		pin := strings.ToLower(f.Name)
		tv := strings.Split(tag, ",")
		if len(tv) > 2 {
			return nil, errors.Errorf("unsupported tag %q for field %q in %q", tag, f.Name, typ.Name())
		}
		if len(tv) == 2 && tv[1] != "" {
			pin = tv[1]
		}
		if strings.IndexByte(pin, '.') >= 0 {
			return nil, errors.Errorf("invalid port name %q for field %q in %q", pin, f.Name, typ.Name())
		}
		if f.Type.Kind() != reflect.Bool {
			return nil, errors.Errorf("unsupported type %q for field %q in %q", f.Type.Kind(), f.Name, typ.Name())
		}
		if !f.IsExported() {
			return nil, errors.Errorf("unexported field %q in %q", f.Name, typ.Name())
		}
		switch tv[0] {
		case "in":
			if hasPort(d.in, pin) {
				return nil, errors.Errorf("duplicate input %q in %q", pin, typ.Name())
			}
			d.in = append(d.in, pin)
			d.inf = append(d.inf, e.Field(i))
		case "out":
			if hasPort(d.out, pin) {
				return nil, errors.Errorf("duplicate output %q in %q", pin, typ.Name())
			}
			d.out = append(d.out, pin)
			d.outf = append(d.outf, e.Field(i))
		default:
			return nil, errors.Errorf("unsupported tag %q for field %q in %q", tag, f.Name, typ.Name())
		}
	}
	u.Update()
	return d, nil
}

type structDevice struct {
	u         Updater
	name      string
	in, out   []string
	inf, outf []reflect.Value
}

func (d *structDevice) Inputs() []string  { return d.in }
func (d *structDevice) Outputs() []string { return d.out }

func (d *structDevice) SetInput(name string, value bool) error {
	i := indexOf(d.in, name)
	if i < 0 {
		return errors.Wrapf(ErrNoSuchPort, "%s has no input %q", d.name, name)
	}
	d.inf[i].SetBool(value)
	d.u.Update()
	return nil
}

func (d *structDevice) Output(name string) (bool, error) {
	i := indexOf(d.out, name)
	if i < 0 {
		return false, errors.Wrapf(ErrNoSuchPort, "%s has no output %q", d.name, name)
	}
	return d.outf[i].Bool(), nil
}
