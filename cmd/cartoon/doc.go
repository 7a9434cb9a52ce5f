// 17 Oct 2026

/*
Cartoon reads a protein or nucleic acid structure in PDB format and
writes triangle meshes for a cartoon or ribbon drawing.

Helices and strands come from HELIX and SHEET records if the file has
them. Other residues are labelled by looking at the alpha carbon trace
in a small window. Labels are then tidied up, so very short helices and
strands become coil and short gaps are filled.
A spline runs through the backbone of each chain. Helices become round
tubes, strands flat slabs with an arrow head and coil a thin tube.
Chains are done in parallel.

Given no explicit input path, it reads from standard input. The input
may be gzipped.
Given no output filename, it writes to standard output.
The output is a JSON object with the chains, their secondary structure,
ligands with guessed bonds, labels and one mesh per run of secondary
structure. With -f obj or an output name ending in .obj, it is a
Wavefront OBJ file with a colour after each vertex.

Usage:
	cartoon [flags] [input [output]]
	cartoon -d outdir [flags] input...

The flags are:
	-mode cartoon|ribbon|trace
		Round helices, everything flat or just lines.
	-color ss|chain|rainbow|uniform
		How vertices are coloured.
	-spr n
		Samples per residue along the spline.
	-basis bspline|catmullrom
		A B-spline is smooth but cuts corners. Catmull-Rom goes
		through every backbone atom.
	-helixr, -sheetw, -sheett, -coilr
		Sizes in Angstrom.
	-minhelix, -minsheet, -maxgap
		Smoothing of the labels.
	-nogeom
		Only trust the HELIX and SHEET records.
	-f json|obj
		Output format.
	-p file.png
		Also draw a quick picture.
	-fetch site
		Take the input as a four character PDB code and download it
		from site 0 (RCSB), 1 (PDBe) or 2 (PDBj).
	-d outdir, -r nworker
		Convert all the input files to outdir with nworker threads.
	-l logfile, -v level
		Log warnings and per chain summaries.
*/
package main
