package gui

const homeText = `# Lumen Render Studio

Welcome. Each tab hosts one demo scene built on the Mitsuba 3 renderer.
Adjust the parameters, press **Render** and the result appears in the
viewer on the right. Only one render runs at a time; a second request is
rejected while a job is in flight.

## Scenes

- **Basic Scene** starts with a single sphere. Swap materials and move the
  object to see how geometry, emitters and sensors fit together.
- **Materials Showcase** lines up five spheres with different BSDFs under
  the same lighting so the material models can be compared directly.
- **Lighting Techniques** cycles through point, area, directional,
  three-point, environment and colored setups on a fixed subject.
- **Glass Demo** renders a dielectric object with an adjustable index of
  refraction and optional caustics.
- **Cornell Box** is the classic global illumination test: colored walls,
  an area light in the ceiling and two objects inside the box.

## Variants

Renders run on the scalar CPU backend by default. Pick a vectorized or GPU
variant in the render settings when your worker supports it; the Custom
Mesh and Inverse Rendering tabs describe workflows that need the
differentiable variants.`

const customMeshText = `# Custom Mesh Rendering

Lumen's demo scenes use analytic shapes, but Mitsuba loads triangle meshes
from PLY and OBJ files through the ` + "`ply`" + ` and ` + "`obj`" + ` shape plugins. To
render your own model, add a shape dictionary pointing at the file:

    "mesh": {
        "type": "ply",
        "filename": "model.ply",
        "bsdf": {"type": "diffuse"}
    }

Place the mesh next to the scene file or give an absolute path. Large
meshes benefit from the ` + "`llvm_ad_rgb`" + ` variant, which vectorizes ray
traversal across CPU lanes.

This tab is informational; mesh import is driven from the command line
with ` + "`lumen render`" + ` and a scene parameter file.`

const inverseRenderingText = `# Inverse Rendering

Mitsuba 3 is differentiable: with the ` + "`llvm_ad_rgb`" + ` or ` + "`cuda_ad_rgb`" + `
variants the renderer computes gradients of the output image with respect
to scene parameters. That enables optimization loops that recover
materials, lighting or geometry from photographs.

A typical loop renders the scene, compares the result against a reference
image, backpropagates the loss through the renderer and updates the scene
parameters. The worker exposes the forward render only; gradient descent
runs in the driving script.

Check variant availability with ` + "`lumen variants`" + `. The CUDA variant
requires an NVIDIA GPU with a recent driver.`
