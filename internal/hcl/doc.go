// Package hcl provides the HCL implementation of the config.Loader interface.
// It parses every .hcl file under the given paths, decodes the top-level
// `object`, `style` and `graph` blocks and translates them into the
// format-agnostic config.Model.
//
// A scene file looks like this:
//
//	graph {
//	  rankdir = "LR"
//	}
//
//	style "root" {
//	  shape = "circle"
//	}
//
//	object "Rig" {
//	  kind           = "armature"
//	  visible_layers = [0, 1]
//
//	  bone "Arm.L" {
//	    parent = "Spine"
//	    deform = true
//
//	    constraint "IK" {
//	      type      = "IK"
//	      target    = "Rig"
//	      subtarget = "Hand.IK.L"
//	    }
//	  }
//
//	  vertex_group "Chest" {}
//	}
package hcl
