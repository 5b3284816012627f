package cli

// Message constants
const (
	MsgRootShort = "Batch access to the iTOL (Interactive Tree Of Life) server"
	MsgRootLong  = `itol uploads phylogenetic trees to the iTOL server and exports the
rendered visualizations, without going through the web interface.

The single DATA argument is inspected to decide what to do:
  - an existing ZIP file is uploaded as is
  - an existing tree file (Newick, Nexus, PhyloXML or Jplace) is zipped
    and uploaded
  - a tree ID or an itol.embl.de tree URL triggers a download

Trees uploaded without an upload ID are anonymous and are deleted from
the server after 30 days.`
	MsgRootExample = `  # Upload a tree file (zipped on the fly)
  itol species.tree -i MyUploadID -p "My project"

  # Upload a prepared archive
  itol iTOL.tree.zip

  # Download tree 12345 as PDF
  itol 12345 -f pdf -o tree.pdf

  # Pass extra export parameters through to the server
  itol 12345 -f svg --param display_mode=2 --param label_display=1`

	MsgUploadShort = "Upload a tree or a prepared archive"
	MsgUploadLong  = `Upload ships a tree file or a ZIP archive to the iTOL batch uploader.

A plain tree file is zipped on the fly under the normalized member name
iTOL.tree.txt (tree.jplace for placement files). With --all, annotation
files (*.txt) sitting next to the tree ride along in the archive. A ZIP
file is uploaded untouched; in that case the tree member inside must
carry a .tree or .tree.txt extension.`
	MsgUploadExample = `  # Anonymous upload, tree only
  itol upload species.tree

  # Upload the tree plus all sibling annotation files
  itol upload species.tree --all -i MyUploadID -p "My project"`

	MsgDownloadShort = "Export an uploaded tree"
	MsgDownloadLong  = `Download exports a rendered tree from the iTOL batch downloader.

ID accepts a bare tree ID or a full itol.embl.de tree URL. Graphical
formats are svg, eps, pdf and png; text formats are newick, nexus and
phyloxml. Export options documented on the iTOL help page are passed
through verbatim with repeated --param key=value flags.`
	MsgDownloadExample = `  # Export as PDF (the default format)
  itol download 12345

  # Circular SVG with visible labels
  itol download 12345 -f svg --param display_mode=2 --param label_display=1`

	MsgAnnotateShort = "Generate annotation files from a layer description"
	MsgAnnotateLong  = `Annotate reads a YAML layer file and writes one iTOL annotation file
per layer into the output directory. The generated files pair with a
tree upload: place them next to the tree and upload with --all, or
point annotate at an existing project directory.

Run "itol docs annotations" for the list of layer kinds and their
settings.`
	MsgAnnotateExample = `  # Write annotation files next to the tree, then upload everything
  itol annotate layers.yaml --dir ./iTOL
  itol upload ./iTOL/species.tree --all`

	MsgDocsShort = "Browse built-in documentation topics"
	MsgDocsLong  = `Docs renders a built-in documentation topic in the terminal. Without
an argument it lists the available topics.`

	MsgVersionShort = "Print version information"
	MsgVersionLong  = `Print detailed version information including commit hash and build date`
)
